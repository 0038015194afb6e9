// Package lexicon holds the static vocabulary the generators draw from and
// the one keyword matching routine every classifier uses.
package lexicon

import "strings"

// KeywordSet maps an identifier to the substrings that trigger it.
type KeywordSet struct {
	ID       string
	Triggers []string
}

// Contains reports whether any trigger occurs in text. Matching is plain
// case-insensitive substring containment; no tokenizing or stemming.
func Contains(text string, triggers []string) bool {
	return containsLower(strings.ToLower(text), triggers)
}

func containsLower(lower string, triggers []string) bool {
	for _, t := range triggers {
		if t != "" && strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// MatchAll returns the IDs of every set that matches, in set order.
func MatchAll(text string, sets []KeywordSet) []string {
	lower := strings.ToLower(text)
	var ids []string
	for _, s := range sets {
		if containsLower(lower, s.Triggers) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// MatchFirst returns the first set (in slice order) that matches.
func MatchFirst(text string, sets []KeywordSet) (string, bool) {
	lower := strings.ToLower(text)
	for _, s := range sets {
		if containsLower(lower, s.Triggers) {
			return s.ID, true
		}
	}
	return "", false
}
