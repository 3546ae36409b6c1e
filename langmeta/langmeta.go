// Package langmeta maps target language codes to display names and
// translation style instructions for the prompt builder.
package langmeta

import (
	"sort"
	"strings"

	"github.com/minios-linux/mdtranslate/clierr"
)

// Preset holds the built-in metadata for a known language.
type Preset struct {
	Name         string
	Instructions string
}

// Metadata is the resolved per-invocation language metadata. Code keeps the
// caller's spelling verbatim; normalization affects lookup only.
type Metadata struct {
	Code         string
	Name         string
	Instructions string
}

// FallbackInstructions is used for language codes without a preset.
const FallbackInstructions = "Use a neutral, professional tone appropriate for technical documentation."

// presets contains canonical language metadata, keyed by normalized code
// (lowercase, hyphen-separated).
var presets = map[string]Preset{
	"ar": {
		Name:         "Arabic",
		Instructions: "Use Modern Standard Arabic. Keep technical terms in Latin script where that is the established convention.",
	},
	"cs": {
		Name:         "Czech",
		Instructions: "Use standard written Czech with established IT terminology.",
	},
	"de": {
		Name:         "German",
		Instructions: "Use the formal Sie register and established German IT terminology. Keep compound technical nouns natural, not calqued.",
	},
	"es": {
		Name:         "Spanish",
		Instructions: "Use neutral Latin American Spanish understandable across regions. Prefer established software terminology.",
	},
	"fr": {
		Name:         "French",
		Instructions: "Use the formal vous register and standard French technical vocabulary. Follow French typographic conventions for punctuation.",
	},
	"hi": {
		Name:         "Hindi",
		Instructions: "Use standard Hindi in Devanagari script. Keep widely used English technical terms in Latin script.",
	},
	"id": {
		Name:         "Indonesian",
		Instructions: "Use formal Bahasa Indonesia with standard technology terminology.",
	},
	"it": {
		Name:         "Italian",
		Instructions: "Use standard Italian with established software terminology. Avoid anglicisms where an Italian term is in common use.",
	},
	"ja": {
		Name:         "Japanese",
		Instructions: "Use polite です/ます form. Keep katakana loanwords for established technical terms.",
	},
	"ko": {
		Name:         "Korean",
		Instructions: "Use the formal 합니다 register common in technical documentation. Keep established English technical terms where Korean usage does.",
	},
	"nl": {
		Name:         "Dutch",
		Instructions: "Use standard Dutch with common software terminology. Keep English loanwords where Dutch technical writing does.",
	},
	"pl": {
		Name:         "Polish",
		Instructions: "Use standard written Polish with established IT terminology.",
	},
	"pt": {
		Name:         "Portuguese",
		Instructions: "Use European Portuguese orthography and established technical vocabulary.",
	},
	"pt-br": {
		Name:         "Brazilian Portuguese",
		Instructions: "Use Brazilian Portuguese orthography and the technical vocabulary common in the Brazilian software community.",
	},
	"ru": {
		Name:         "Russian",
		Instructions: "Use standard written Russian with established IT terminology. Prefer the impersonal register typical of Russian technical documentation.",
	},
	"sv": {
		Name:         "Swedish",
		Instructions: "Use standard Swedish with common software terminology.",
	},
	"th": {
		Name:         "Thai",
		Instructions: "Use formal written Thai. Keep established English technical terms in Latin script.",
	},
	"tr": {
		Name:         "Turkish",
		Instructions: "Use standard Turkish with established software terminology.",
	},
	"uk": {
		Name:         "Ukrainian",
		Instructions: "Use standard written Ukrainian with established IT terminology.",
	},
	"vi": {
		Name:         "Vietnamese",
		Instructions: "Use standard Vietnamese. Keep widely adopted English technical terms untranslated.",
	},
	"zh": {
		Name:         "Simplified Chinese",
		Instructions: "Use Simplified Chinese characters and mainland technical terminology. Insert a space between Chinese text and Latin words or numbers.",
	},
	"zh-cn": {
		Name:         "Simplified Chinese",
		Instructions: "Use Simplified Chinese characters and mainland technical terminology. Insert a space between Chinese text and Latin words or numbers.",
	},
	"zh-tw": {
		Name:         "Traditional Chinese",
		Instructions: "Use Traditional Chinese characters and the technical terminology common in Taiwan. Insert a space between Chinese text and Latin words or numbers.",
	},
}

// normalize lowers the code and converts underscores to hyphens so that
// pt_BR, pt-br, and PT-BR all hit the same preset key.
func normalize(code string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", "-")
}

// Resolve returns the metadata for a caller-supplied language code.
// Unknown codes never fail: they produce a fallback record with the raw
// code as display name and neutral instructions. Only a blank code is an
// error.
func Resolve(code string) (Metadata, error) {
	if strings.TrimSpace(code) == "" {
		return Metadata{}, &clierr.MissingLanguage{}
	}
	if p, ok := presets[normalize(code)]; ok {
		return Metadata{Code: code, Name: p.Name, Instructions: p.Instructions}, nil
	}
	return Metadata{Code: code, Name: code, Instructions: FallbackInstructions}, nil
}

// Codes returns the sorted list of preset language codes.
func Codes() []string {
	codes := make([]string, 0, len(presets))
	for code := range presets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// PresetFor returns the preset for a normalized code, for display purposes.
func PresetFor(code string) (Preset, bool) {
	p, ok := presets[normalize(code)]
	return p, ok
}
