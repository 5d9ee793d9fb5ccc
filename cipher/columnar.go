package cipher

import (
	"fmt"
	"sort"
	"strings"
)

// ReadOrder returns the original column indices in the order the columns are
// read out: ascending by rank. Ranks must be distinct, otherwise the column
// order is ambiguous.
func ReadOrder(kc []int) ([]int, error) {
	if len(kc) == 0 {
		return nil, fmt.Errorf("%w: empty transposition key", ErrInvalidKey)
	}
	seen := make(map[int]struct{}, len(kc))
	for i, r := range kc {
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: duplicate rank %d at %d", ErrInvalidKey, r, i)
		}
		seen[r] = struct{}{}
	}
	order := make([]int, len(kc))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return kc[order[a]] < kc[order[b]]
	})
	return order, nil
}

// RanksFromWord derives a transposition rank key from a keyword: each letter
// gets the rank of its position in the alphabetical sort of the word, ties
// broken left to right. "ZEBRA" becomes [4 2 1 3 0].
func RanksFromWord(word string) ([]int, error) {
	if len(word) == 0 {
		return nil, fmt.Errorf("%w: empty column keyword", ErrInvalidKey)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return nil, fmt.Errorf("%w: column keyword symbol %q at %d", ErrInvalidKey, word[i], i)
		}
	}
	idx := make([]int, len(word))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return word[idx[a]] < word[idx[b]]
	})
	ranks := make([]int, len(word))
	for pos, col := range idx {
		ranks[col] = pos
	}
	return ranks, nil
}

// padToWidth fills the last grid row with the filler symbol.
func padToWidth(text string, width int) string {
	rem := len(text) % width
	if rem == 0 {
		return text
	}
	return text + strings.Repeat(string(filler), width-rem)
}

// readColumns emits the row-major text column by column in the given order.
// The text length must be a whole number of rows.
func readColumns(text string, order []int) string {
	cols := len(order)
	rows := len(text) / cols
	out := make([]byte, 0, len(text))
	for _, col := range order {
		for r := 0; r < rows; r++ {
			out = append(out, text[r*cols+col])
		}
	}
	return string(out)
}

// InvertTransposition rebuilds the row-major stream from a column-ordered
// ciphertext, given the candidate read order perm: segment i of the
// ciphertext is the column perm[i]. Both attacks share this inverse.
func InvertTransposition(ciphertext string, perm []int) (string, error) {
	cols := len(perm)
	if cols == 0 {
		return "", fmt.Errorf("empty column order")
	}
	seen := make([]bool, cols)
	for _, col := range perm {
		if col < 0 || col >= cols || seen[col] {
			return "", fmt.Errorf("column order %v is not a permutation of 0..%d", perm, cols-1)
		}
		seen[col] = true
	}
	if len(ciphertext)%cols != 0 {
		return "", fmt.Errorf("ciphertext length %d not divisible into %d columns", len(ciphertext), cols)
	}
	rows := len(ciphertext) / cols
	out := make([]byte, len(ciphertext))
	for i, col := range perm {
		seg := ciphertext[i*rows : (i+1)*rows]
		for r := 0; r < rows; r++ {
			out[r*cols+col] = seg[r]
		}
	}
	return string(out), nil
}
