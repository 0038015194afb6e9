// Package responder produces the conversational copilot replies.
package responder

import (
	"strings"

	"github.com/creative-copilot/backend/internal/lexicon"
)

type Bucket string

const (
	BucketFitness  Bucket = "fitness"
	BucketSoftware Bucket = "software"
	BucketFood     Bucket = "food"
	BucketFallback Bucket = "fallback"
)

// Buckets are checked in slice order, first match wins. The order is
// inherited, not meaningful; changing it changes replies.
var Buckets = []lexicon.KeywordSet{
	{ID: string(BucketFitness), Triggers: []string{"fitness", "workout", "gym"}},
	{ID: string(BucketSoftware), Triggers: []string{"app", "software", "saas"}},
	{ID: string(BucketFood), Triggers: []string{"food", "restaurant", "recipe"}},
}

// Greeting opens every chat session.
const Greeting = "Hi! I'm your Creative AI Copilot. I help transform your product ideas into viral marketing campaigns with AI-powered captions, creative strategies, and content calendars. What product would you like to create a campaign for?"

const placeholder = "{{utterance}}"

// Classify routes an utterance to its bucket.
func Classify(utterance string) Bucket {
	if id, ok := lexicon.MatchFirst(utterance, Buckets); ok {
		return Bucket(id)
	}
	return BucketFallback
}

// Respond returns the reply for utterance, interpolated verbatim.
func Respond(utterance string) string {
	return render(Classify(utterance), utterance)
}

func render(b Bucket, utterance string) string {
	tpl, ok := replies[b]
	if !ok {
		tpl = replies[BucketFallback]
	}
	// single pass; text inserted from utterance is not rescanned
	return strings.ReplaceAll(tpl, placeholder, utterance)
}
