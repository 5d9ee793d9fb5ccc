// Package cipher implements a two-stage classical cipher: Vigenere
// substitution followed by columnar transposition. Messages and keys are
// uppercase A-Z only; callers normalize before this boundary.
package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidKey reports a malformed substitution or transposition key.
var ErrInvalidKey = errors.New("invalid key")

// filler pads the final grid row to full width. A filler symbol at the end
// of a decrypted message is indistinguishable from a genuine trailing one.
const filler = 'X'

// Normalize uppercases s and strips everything outside A-Z.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}
	return string(out)
}

func checkMessage(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return fmt.Errorf("message symbol %q at %d: want A-Z", s[i], i)
		}
	}
	return nil
}

// Encrypt runs the full two-stage encryption. The plaintext is padded with
// the filler to a whole number of grid rows, each symbol is shifted by the
// repeating substitution key kv, and the grid is read out column by column
// in ascending rank order of kc.
func Encrypt(plaintext, kv string, kc []int) (string, error) {
	if err := checkMessage(plaintext); err != nil {
		return "", err
	}
	order, err := ReadOrder(kc)
	if err != nil {
		return "", err
	}
	padded := padToWidth(plaintext, len(kc))
	intermediate, err := VigenereEncrypt(padded, kv)
	if err != nil {
		return "", err
	}
	return readColumns(intermediate, order), nil
}

// Decrypt inverts Encrypt: the grid is rebuilt from the column-ordered
// ciphertext, then the substitution is undone. The result is the original
// plaintext plus any filler padding added during encryption.
func Decrypt(ciphertext, kv string, kc []int) (string, error) {
	if err := checkMessage(ciphertext); err != nil {
		return "", err
	}
	order, err := ReadOrder(kc)
	if err != nil {
		return "", err
	}
	intermediate, err := InvertTransposition(ciphertext, order)
	if err != nil {
		return "", err
	}
	return VigenereDecrypt(intermediate, kv)
}
