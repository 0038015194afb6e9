package models

import (
	"encoding/json"
	"strings"
)

// GeneratedArtifact is one populated template. Never mutated after it is returned.
type GeneratedArtifact struct {
	Template     Template `json:"template"`
	Headline     string   `json:"headline"`
	Subtext      string   `json:"subtext"`
	CallToAction string   `json:"call_to_action"`
	Caption      string   `json:"caption"`
	Hashtags     []string `json:"hashtags"`
}

// HashtagLine is the copy-ready form of the hashtag set.
func (a GeneratedArtifact) HashtagLine() string {
	return strings.Join(a.Hashtags, " ")
}

func (a GeneratedArtifact) MarshalJSON() ([]byte, error) {
	type plain GeneratedArtifact
	return json.Marshal(struct {
		plain
		HashtagLine string `json:"hashtag_line"`
	}{plain: plain(a), HashtagLine: a.HashtagLine()})
}
