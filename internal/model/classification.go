package model

import (
	"sort"
	"strings"
	"time"
)

// TopicSeparator joins the topic set into the flat column persisted with a
// classification. Splitting on it recovers the original set.
const TopicSeparator = "; "

// Classification is a review after the hybrid sentiment procedure ran.
// Only the final label is kept; the pre-correction value is discarded.
type Classification struct {
	ClassifiedAt time.Time
	Review       Review
	Topics       []string
	Sentiment    Sentiment
}

// TopicsColumn renders the topic set as a deterministic scalar for tabular
// sinks: sorted, joined with TopicSeparator.
func (c Classification) TopicsColumn() string {
	if len(c.Topics) == 0 {
		return ""
	}
	topics := make([]string, len(c.Topics))
	copy(topics, c.Topics)
	sort.Strings(topics)
	return strings.Join(topics, TopicSeparator)
}

// SplitTopicsColumn parses a TopicsColumn value back into the topic set.
func SplitTopicsColumn(column string) []string {
	if column == "" {
		return nil
	}
	return strings.Split(column, TopicSeparator)
}

// WordOccurrence is one row of the word-frequency tables: a single token
// occurrence inside one review. A word repeated in a review yields one
// occurrence per repetition.
type WordOccurrence struct {
	Word     string
	ReviewID string
}
