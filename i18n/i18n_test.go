package i18n

import "testing"

func TestTPassthroughWithoutInit(t *testing.T) {
	locale = nil
	if got := T("unexpected error"); got != "unexpected error" {
		t.Fatalf("T() = %q, want passthrough", got)
	}
}

func TestTPassthroughUnknownLocale(t *testing.T) {
	Init("zz")
	if got := T("unexpected error"); got != "unexpected error" {
		t.Fatalf("T() = %q, want passthrough for unknown locale", got)
	}
}

func TestTRussian(t *testing.T) {
	Init("ru")
	if got := T("unexpected error"); got != "непредвиденная ошибка" {
		t.Fatalf("T() = %q, want Russian translation", got)
	}
	// Untranslated strings still pass through.
	if got := T("some brand new message"); got != "some brand new message" {
		t.Fatalf("T() = %q, want passthrough", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "LANGUAGE list", env: map[string]string{"LANGUAGE": "ru:en"}, want: "ru"},
		{name: "LC_ALL with encoding", env: map[string]string{"LC_ALL": "de_DE.UTF-8"}, want: "de_DE"},
		{name: "C locale skipped", env: map[string]string{"LC_ALL": "C", "LANG": "fr_FR"}, want: "fr_FR"},
		{name: "nothing set", env: nil, want: "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
				t.Setenv(key, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := detectLanguage(); got != tc.want {
				t.Fatalf("detectLanguage() = %q, want %q", got, tc.want)
			}
		})
	}
}
