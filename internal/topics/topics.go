// Package topics extracts coarse subject tags from review text: noun and
// proper-noun tokens that are not stopwords, deduplicated into a set.
// Topics are best-effort; a missing or failing tagger yields an empty set
// and never fails the pipeline.
package topics

import (
	"log/slog"
	"sort"
	"strings"
)

// TaggedToken is one token of the part-of-speech oracle's output.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger is the part-of-speech tagging oracle.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// Extract runs the tagger over the raw (not normalized) text and returns
// the unique noun-like tokens, lowercased and sorted. Order carries no
// meaning; sorting only makes the output deterministic. A nil tagger or a
// tagger error returns an empty set.
func Extract(tagger Tagger, rawText string) []string {
	if tagger == nil || rawText == "" {
		return nil
	}

	tokens, err := tagger.Tag(rawText)
	if err != nil {
		slog.Warn("POS tagging failed, skipping topics", "error", err)
		return nil
	}

	seen := make(map[string]bool)
	for _, token := range tokens {
		if !isNounTag(token.Tag) {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(token.Text))
		if word == "" || stopwords[word] {
			continue
		}
		seen[word] = true
	}

	if len(seen) == 0 {
		return nil
	}

	topics := make([]string, 0, len(seen))
	for word := range seen {
		topics = append(topics, word)
	}
	sort.Strings(topics)
	return topics
}

// isNounTag accepts Penn-style noun tags: NN, NNS, NNP, NNPS.
func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}
