// Package analysis breaks the two-stage substitution/transposition cipher:
// a ciphertext-only frequency attack and an exact known-plaintext attack,
// both searching over candidate column orders.
package analysis

import "math"

// englishFreq holds English letter frequencies in percent, indexed A-Z,
// measured over a large reference corpus.
var englishFreq = [26]float64{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, // A-G
	6.094, 6.966, 0.153, 0.772, 4.025, 2.406, 6.749, // H-N
	7.507, 1.929, 0.095, 5.987, 6.327, 9.056, 2.758, // O-U
	0.978, 2.360, 0.150, 1.974, 0.074, // V-Z
}

// ChiSquared is the goodness-of-fit statistic between two 26-symbol
// distributions: the sum of (observed-expected)^2/expected. Lower means
// closer. Symbols with zero expected frequency are skipped.
func ChiSquared(observed, expected [26]float64) float64 {
	var sum float64
	for i := range observed {
		if expected[i] == 0 {
			continue
		}
		d := observed[i] - expected[i]
		sum += d * d / expected[i]
	}
	return sum
}

// ScoreEnglish rates how English-like text is: the chi-squared statistic of
// its letter counts against the reference table, divided by the text length
// so scores compare across sample sizes. Empty text scores +Inf and must
// never be ranked as a best candidate.
func ScoreEnglish(text string) float64 {
	n := len(text)
	if n == 0 {
		return math.Inf(1)
	}
	var observed, expected [26]float64
	for i := 0; i < n; i++ {
		if c := text[i]; c >= 'A' && c <= 'Z' {
			observed[c-'A']++
		}
	}
	for i := range expected {
		expected[i] = englishFreq[i] * float64(n) / 100
	}
	return ChiSquared(observed, expected) / float64(n)
}
