package topics

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseTagger implements Tagger with the prose POS model. The model is
// baked into the library, so construction cannot fail, but tagging a
// document can.
type ProseTagger struct{}

var _ Tagger = ProseTagger{}

// NewProseTagger returns the prose-backed tagger.
func NewProseTagger() ProseTagger {
	return ProseTagger{}
}

// Tag tokenizes and tags text with prose, skipping segmentation and
// entity extraction since only token tags are consumed.
func (ProseTagger) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tag document: %w", err)
	}

	tokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return tagged, nil
}
