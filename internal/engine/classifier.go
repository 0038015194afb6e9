package engine

import (
	"github.com/creative-copilot/backend/internal/lexicon"
)

// CategorySet is the Classifier output. The zero value is the empty set.
type CategorySet map[string]struct{}

func (s CategorySet) Has(category string) bool {
	_, ok := s[category]
	return ok
}

// Ordered returns the members in lexicon priority order.
func (s CategorySet) Ordered() []string {
	out := make([]string, 0, len(s))
	for _, c := range lexicon.Categories {
		if s.Has(c.ID) {
			out = append(out, c.ID)
		}
	}
	return out
}

// Classify returns every category whose triggers occur in description.
func Classify(description string) CategorySet {
	set := CategorySet{}
	for _, id := range lexicon.MatchAll(description, lexicon.Categories) {
		set[id] = struct{}{}
	}
	return set
}
