package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		expected  Bucket
	}{
		{"I run a gym and also sell apps", BucketFitness},
		{"My WORKOUT tracker", BucketFitness},
		{"a SaaS for restaurants", BucketSoftware},
		{"new recipe book", BucketFood},
		{"Restaurant booking", BucketFood},
		{"handmade candles", BucketFallback},
		{"", BucketFallback},
		{"Happy hour deals", BucketSoftware},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.utterance))
		})
	}
}

func TestRespond_InterpolatesVerbatim(t *testing.T) {
	utterance := `<b>GymBuddy</b> "100%" {{utterance}}`

	reply := Respond(utterance)
	assert.True(t, strings.HasPrefix(reply, "🏋️ Perfect!"))
	assert.Contains(t, reply, "Our "+utterance+" users are seeing incredible results")
	assert.Equal(t, 2, strings.Count(reply, utterance))
}

func TestRespond_BucketBodies(t *testing.T) {
	tests := []struct {
		utterance string
		prefix    string
		snippet   string
	}{
		{"taskflow software", "💻 Excellent choice!", "taskflow software users be like:"},
		{"grandma's recipe", "🍽️ Food marketing", "This grandma's recipe recipe will change your life"},
		{"scented candles", `Thank you for sharing "scented candles"!`, `"The scented candles that's changing everything"`},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			reply := Respond(tt.utterance)
			assert.True(t, strings.HasPrefix(reply, tt.prefix), reply[:40])
			assert.Contains(t, reply, tt.snippet)
			assert.NotContains(t, reply, placeholder)
		})
	}
}

func TestRespond_EmptyUtteranceUsesFallback(t *testing.T) {
	reply := Respond("")
	assert.True(t, strings.HasPrefix(reply, `Thank you for sharing ""!`))
}

func TestEveryBucketHasReply(t *testing.T) {
	for _, b := range []Bucket{BucketFitness, BucketSoftware, BucketFood, BucketFallback} {
		assert.NotEmpty(t, replies[b], string(b))
	}
}
