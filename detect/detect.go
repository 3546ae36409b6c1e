// Package detect guesses the source language of a document so the prompt
// can mention it. Detection is best effort: an unconfident result is
// reported as no result, and the caller simply omits the hint.
package detect

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

// candidates limits the detector to the languages the preset table covers
// plus English. A fixed set keeps detection fast and the results stable.
var candidates = []lingua.Language{
	lingua.Arabic,
	lingua.Chinese,
	lingua.Czech,
	lingua.Dutch,
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Hindi,
	lingua.Indonesian,
	lingua.Italian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Polish,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Spanish,
	lingua.Swedish,
	lingua.Thai,
	lingua.Turkish,
	lingua.Ukrainian,
	lingua.Vietnamese,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// language model loading is expensive, so the detector is built once and
// only when detection is actually requested.
func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			WithMinimumRelativeDistance(0.25).
			Build()
	})
	return detector
}

// Language returns the English display name of the detected language
// ("English", "Japanese", ...) and whether detection was confident enough
// to use.
func Language(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lang, ok := getDetector().DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}
