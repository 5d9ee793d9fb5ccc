package analysis

import "golang.org/x/exp/slices"

// Permuter enumerates the permutations of {0..n-1} in lexicographic order,
// one at a time. The sequence is finite and restartable: a fresh Permuter
// yields the same sequence again. Cost is n!, so callers bound n before
// enumerating; the Permuter itself never truncates.
type Permuter struct {
	cur  []int
	done bool
}

func NewPermuter(n int) *Permuter {
	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	return &Permuter{cur: cur}
}

// Next returns the next permutation, or false once the sequence is spent.
func (p *Permuter) Next() ([]int, bool) {
	if p.done || len(p.cur) == 0 {
		return nil, false
	}
	out := slices.Clone(p.cur)

	// advance to the lexicographic successor in place
	i := len(p.cur) - 2
	for i >= 0 && p.cur[i] >= p.cur[i+1] {
		i--
	}
	if i < 0 {
		p.done = true
		return out, true
	}
	j := len(p.cur) - 1
	for p.cur[j] <= p.cur[i] {
		j--
	}
	p.cur[i], p.cur[j] = p.cur[j], p.cur[i]
	for l, r := i+1, len(p.cur)-1; l < r; l, r = l+1, r-1 {
		p.cur[l], p.cur[r] = p.cur[r], p.cur[l]
	}
	return out, true
}
