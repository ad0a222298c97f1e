package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detector     lingua.LanguageDetector
	detectorOnce sync.Once
)

// DetectLanguage stamps the post with a lowercase ISO 639-1 code. The
// detector is narrowed to the languages the service actually sees; lingua
// loads models per language and the full set is far too heavy for a field
// nobody filters on yet.
func DetectLanguage(content string) string {
	if len(strings.TrimSpace(content)) == 0 {
		return "unknown"
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Russian,
				lingua.Spanish,
				lingua.Japanese,
				lingua.Chinese,
			).
			Build()
	})

	if language, ok := detector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	return "unknown"
}
