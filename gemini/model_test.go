package gemini

import (
	"errors"
	"testing"

	"github.com/minios-linux/mdtranslate/clierr"
	"github.com/minios-linux/mdtranslate/config"
)

func override(value, source string) config.Override {
	return config.Override{Value: value, Source: source, Set: true}
}

func TestResolveModelPrecedence(t *testing.T) {
	flag := override("from-flag", "flag")
	env := override("from-env", "environment")
	file := override("from-file", "config file")
	absent := config.Override{}

	cases := []struct {
		name      string
		overrides []config.Override
		want      string
	}{
		{name: "flag outranks everything", overrides: []config.Override{flag, env, file}, want: "from-flag"},
		{name: "env outranks file", overrides: []config.Override{absent, env, file}, want: "from-env"},
		{name: "file outranks default", overrides: []config.Override{absent, absent, file}, want: "from-file"},
		{name: "default when nothing is set", overrides: []config.Override{absent, absent, absent}, want: DefaultModel},
		{name: "no overrides at all", overrides: nil, want: DefaultModel},
		{name: "value is trimmed", overrides: []config.Override{override("  gemini-1.5-pro  ", "flag")}, want: "gemini-1.5-pro"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveModel(tc.overrides...)
			if err != nil {
				t.Fatalf("ResolveModel() error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ResolveModel() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveModelBlankOverride(t *testing.T) {
	// A blank override is a configuration error, not a fall-through: the
	// lower tier must not be consulted.
	_, err := ResolveModel(override("   ", "environment"), override("from-file", "config file"))

	var im *clierr.InvalidModel
	if !errors.As(err, &im) {
		t.Fatalf("error = %v, want InvalidModel", err)
	}
	if im.Source != "environment" {
		t.Fatalf("InvalidModel.Source = %q, want environment", im.Source)
	}
}

func TestEndpoint(t *testing.T) {
	cases := []struct {
		name  string
		model string
		want  string
	}{
		{
			name:  "short name expands into template",
			model: "gemini-2.5-flash",
			want:  "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent",
		},
		{
			name:  "https URL passes through",
			model: "https://example.com/v1/custom:generateContent",
			want:  "https://example.com/v1/custom:generateContent",
		},
		{
			name:  "http URL passes through",
			model: "http://localhost:8080/generate",
			want:  "http://localhost:8080/generate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Endpoint(tc.model); got != tc.want {
				t.Fatalf("Endpoint(%q) = %q, want %q", tc.model, got, tc.want)
			}
		})
	}
}
