package analysis

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// EnglishConfidence reports how confidently a language detector classifies
// text as English, between 0 and 1. The detector is built on first use and
// shared read-only afterwards.
func EnglishConfidence(text string) float64 {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish).
			Build()
	})
	return detector.ComputeLanguageConfidence(text, lingua.English)
}
