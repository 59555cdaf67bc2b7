package aggregate

import "strings"

// TokenTally counts token occurrences while remembering first-seen order.
type TokenTally struct {
	counts map[string]int
	order  []string
}

func NewTokenTally() *TokenTally {
	return &TokenTally{counts: make(map[string]int)}
}

// AddList counts every whitespace-separated token in list.
func (t *TokenTally) AddList(list string) {
	for _, token := range strings.Fields(list) {
		if _, ok := t.counts[token]; !ok {
			t.order = append(t.order, token)
		}
		t.counts[token]++
	}
}

// MostCommon returns the token with the highest count. Ties go to the token seen first.
func (t *TokenTally) MostCommon() (string, int) {
	var best string
	var bestCount int
	for _, token := range t.order {
		if c := t.counts[token]; c > bestCount {
			best, bestCount = token, c
		}
	}
	return best, bestCount
}

// Count returns the tally for token.
func (t *TokenTally) Count(token string) int {
	return t.counts[token]
}
