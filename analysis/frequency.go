package analysis

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/mmsaleem/cipherlab/cipher"
)

// MaxColumns bounds the transposition search. The permutation space grows
// factorially, so admission control happens here at the attack boundary.
const MaxColumns = 8

// scoreThreshold is the per-letter chi-squared below which a decoded
// candidate counts as a confident recovery. English text lands well under
// it; shuffled or uniform text lands far above.
const scoreThreshold = 0.7

var (
	// ErrInconclusive means the search completed but no candidate scored
	// below the confidence threshold.
	ErrInconclusive = errors.New("no confident recovery")
	// ErrKeyNotFound means no permutation produced a repeating shift
	// pattern against the known plaintext.
	ErrKeyNotFound = errors.New("no consistent key found")
	// ErrInsufficientSample means a candidate key matched but the aligned
	// sample is too short to confirm two full key repetitions.
	ErrInsufficientSample = errors.New("aligned sample too short to confirm key period")
)

// FrequencyResult is the best candidate found by AttackFrequency.
type FrequencyResult struct {
	Columns    int
	Perm       []int // column read order
	Key        string
	Plaintext  string
	Score      float64 // per-letter chi-squared of Plaintext
	Confidence float64 // English-language confidence of Plaintext, 0..1
}

// AttackFrequency mounts the ciphertext-only attack: for every column count
// up to maxCols, every column permutation, and every substitution key length
// in [keyMin, keyMax], it undoes the transposition, recovers a key by
// per-position frequency matching, and keeps the single best-scoring decode.
// Iteration order is fixed, so ties go to the first candidate encountered
// and repeated calls return identical results.
func AttackFrequency(ciphertext string, maxCols, keyMin, keyMax int) (*FrequencyResult, error) {
	if err := checkLetters(ciphertext); err != nil {
		return nil, fmt.Errorf("ciphertext: %w", err)
	}
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("empty ciphertext")
	}
	if maxCols < 1 || maxCols > MaxColumns {
		return nil, fmt.Errorf("max columns %d outside 1..%d", maxCols, MaxColumns)
	}
	if keyMin < 1 || keyMax < keyMin {
		return nil, fmt.Errorf("bad key length range %d..%d", keyMin, keyMax)
	}

	var best *FrequencyResult
	for cols := 1; cols <= maxCols; cols++ {
		// every grid this cipher emits is rectangular
		if len(ciphertext)%cols != 0 {
			continue
		}
		perms := NewPermuter(cols)
		for perm, ok := perms.Next(); ok; perm, ok = perms.Next() {
			stream, err := cipher.InvertTransposition(ciphertext, perm)
			if err != nil {
				return nil, err
			}
			for keyLen := keyMin; keyLen <= keyMax && keyLen <= len(stream); keyLen++ {
				key := recoverKey(stream, keyLen)
				decoded, err := cipher.VigenereDecrypt(stream, key)
				if err != nil {
					return nil, err
				}
				score := ScoreEnglish(decoded)
				if math.IsInf(score, 1) {
					continue
				}
				if best == nil || score < best.Score {
					best = &FrequencyResult{
						Columns:   cols,
						Perm:      slices.Clone(perm),
						Key:       key,
						Plaintext: decoded,
						Score:     score,
					}
				}
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no scorable candidate: %w", ErrInconclusive)
	}
	if best.Score >= scoreThreshold {
		return nil, fmt.Errorf("best score %.3f not under %.2f: %w", best.Score, scoreThreshold, ErrInconclusive)
	}
	best.Confidence = EnglishConfidence(best.Plaintext)
	return best, nil
}

// recoverKey picks, for each key position, the shift whose decryption of
// that position's subsequence best matches English letter frequencies.
func recoverKey(stream string, keyLen int) string {
	key := make([]byte, keyLen)
	for pos := 0; pos < keyLen; pos++ {
		group := make([]byte, 0, len(stream)/keyLen+1)
		for i := pos; i < len(stream); i += keyLen {
			group = append(group, stream[i])
		}
		bestShift := 0
		bestScore := math.Inf(1)
		dec := make([]byte, len(group))
		for shift := 0; shift < 26; shift++ {
			for i, c := range group {
				dec[i] = byte((int(c-'A')-shift+26)%26) + 'A'
			}
			if s := ScoreEnglish(string(dec)); s < bestScore {
				bestScore = s
				bestShift = shift
			}
		}
		key[pos] = byte(bestShift) + 'A'
	}
	return string(key)
}

func checkLetters(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return fmt.Errorf("symbol %q at %d: want A-Z", s[i], i)
		}
	}
	return nil
}
