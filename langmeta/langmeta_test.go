package langmeta

import (
	"errors"
	"testing"

	"github.com/minios-linux/mdtranslate/clierr"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "pt_BR", want: "pt-br"},
		{in: " ZH-TW ", want: "zh-tw"},
		{in: "ru", want: "ru"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := normalize(tc.in); got != tc.want {
			t.Fatalf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		got, err := Resolve("ja")
		if err != nil {
			t.Fatalf("Resolve(ja) error: %v", err)
		}
		if got.Name != "Japanese" || got.Code != "ja" || got.Instructions == "" {
			t.Fatalf("unexpected result: %#v", got)
		}
	})

	t.Run("case and separator insensitive", func(t *testing.T) {
		a, err := Resolve("zh-TW")
		if err != nil {
			t.Fatalf("Resolve(zh-TW) error: %v", err)
		}
		b, err := Resolve("ZH_TW")
		if err != nil {
			t.Fatalf("Resolve(ZH_TW) error: %v", err)
		}
		if a.Name != b.Name || a.Instructions != b.Instructions {
			t.Fatalf("zh-TW and ZH_TW resolved differently: %#v vs %#v", a, b)
		}
		if a.Name != "Traditional Chinese" {
			t.Fatalf("zh-TW name = %q", a.Name)
		}
	})

	t.Run("display code preserved verbatim", func(t *testing.T) {
		got, err := Resolve("PT_br")
		if err != nil {
			t.Fatalf("Resolve(PT_br) error: %v", err)
		}
		if got.Code != "PT_br" {
			t.Fatalf("Code = %q, want caller spelling preserved", got.Code)
		}
		if got.Name != "Brazilian Portuguese" {
			t.Fatalf("Name = %q", got.Name)
		}
	})

	t.Run("unknown code falls back, never fails", func(t *testing.T) {
		got, err := Resolve("tlh")
		if err != nil {
			t.Fatalf("Resolve(tlh) error: %v", err)
		}
		if got.Name != "tlh" || got.Instructions != FallbackInstructions {
			t.Fatalf("unexpected fallback: %#v", got)
		}
	})

	t.Run("blank code fails", func(t *testing.T) {
		for _, in := range []string{"", "   ", "\t\n"} {
			_, err := Resolve(in)
			var ml *clierr.MissingLanguage
			if !errors.As(err, &ml) {
				t.Fatalf("Resolve(%q) error = %v, want MissingLanguage", in, err)
			}
		}
	})
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) == 0 {
		t.Fatal("Codes() returned an empty list")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes() not sorted: %q before %q", codes[i-1], codes[i])
		}
	}
	if _, ok := PresetFor("JA"); !ok {
		t.Fatal("PresetFor(JA) should match the ja preset")
	}
}
