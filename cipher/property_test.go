package cipher

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// These properties must hold for every message and every valid key pair.
func TestCipherProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genMessage := gen.AlphaString().
		Map(strings.ToUpper).
		SuchThat(func(s string) bool { return len(s) > 0 })
	genSubKey := gen.AlphaString().
		Map(func(s string) string { return strings.ToUpper(s) + "SECURITYKEY" })

	// rank keys are rotations of 0..cols-1, covering widths 1 through 8
	makeRanks := func(cols, rot int) []int {
		kc := make([]int, cols)
		for i := range kc {
			kc[i] = (i + rot) % cols
		}
		return kc
	}

	properties.Property("decrypt inverts encrypt up to filler padding", prop.ForAll(
		func(msg, kv string, cols, rot int) bool {
			kc := makeRanks(cols, rot)
			ct, err := Encrypt(msg, kv, kc)
			if err != nil {
				return false
			}
			pt, err := Decrypt(ct, kv, kc)
			if err != nil {
				return false
			}
			want := msg
			for len(want)%cols != 0 {
				want += "X"
			}
			return pt == want
		},
		genMessage, genSubKey, gen.IntRange(1, 8), gen.IntRange(0, 7),
	))

	properties.Property("ciphertext fills the grid exactly", prop.ForAll(
		func(msg, kv string, cols, rot int) bool {
			ct, err := Encrypt(msg, kv, makeRanks(cols, rot))
			if err != nil {
				return false
			}
			return len(ct)%cols == 0 && len(ct) >= len(msg)
		},
		genMessage, genSubKey, gen.IntRange(1, 8), gen.IntRange(0, 7),
	))

	properties.Property("encrypt is a pure function of its inputs", prop.ForAll(
		func(msg, kv string, cols, rot int) bool {
			kc := makeRanks(cols, rot)
			a, err := Encrypt(msg, kv, kc)
			if err != nil {
				return false
			}
			b, err := Encrypt(msg, kv, kc)
			if err != nil {
				return false
			}
			return a == b
		},
		genMessage, genSubKey, gen.IntRange(1, 8), gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}
