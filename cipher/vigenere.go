package cipher

import "fmt"

// keyShifts expands a letters-only key into per-position shift values.
func keyShifts(key string) ([]int, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty substitution key", ErrInvalidKey)
	}
	shifts := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("%w: substitution key symbol %q at %d", ErrInvalidKey, c, i)
		}
		shifts[i] = int(c - 'A')
	}
	return shifts, nil
}

// VigenereEncrypt shifts each symbol by the key symbol at the same position,
// with the key repeating cyclically: C_i = (P_i + K[i mod len(K)]) mod 26.
func VigenereEncrypt(text, key string) (string, error) {
	if err := checkMessage(text); err != nil {
		return "", err
	}
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		p := int(text[i] - 'A')
		out[i] = byte((p+shifts[i%len(shifts)])%26) + 'A'
	}
	return string(out), nil
}

// VigenereDecrypt is the inverse shift: P_i = (C_i - K[i mod len(K)]) mod 26.
func VigenereDecrypt(text, key string) (string, error) {
	if err := checkMessage(text); err != nil {
		return "", err
	}
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := int(text[i] - 'A')
		out[i] = byte((c-shifts[i%len(shifts)]+26)%26) + 'A'
	}
	return string(out), nil
}
