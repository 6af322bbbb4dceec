// Package classifier implements the hybrid sentiment decision procedure
// for product reviews: a rating gate, a lexicon fallback, and a
// correction pass for false negatives.
package classifier

import (
	"strings"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/model"
	"github.com/resenha-br/resenha/internal/textnorm"
)

// Scorer is the sentiment scoring oracle: a pure, deterministic polarity
// scorer returning a compound score in [-1, 1].
type Scorer interface {
	Compound(text string) float64
}

// Threshold band for mapping a compound score to a label. Exclusive at
// both ends: exactly ±0.05 is Neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// strongPositiveTerms force a Positive label during correction when any
// whitespace-split token of the normalized text matches exactly. The
// entries are accent-folded stems, compared as whole tokens.
var strongPositiveTerms = map[string]bool{
	"otima":       true,
	"otimo":       true,
	"excelente":   true,
	"perfeita":    true,
	"perfeito":    true,
	"maravilhosa": true,
	"maravilhoso": true,
	"adorei":      true,
	"amei":        true,
	"show":        true,
	"incrivel":    true,
}

// Classifier assigns one sentiment label per review. It is stateless
// across reviews and safe for concurrent use.
type Classifier struct {
	scorer Scorer
}

// New builds a classifier around the scoring oracle. A missing scorer is
// a configuration error: classification must not silently degrade.
func New(scorer Scorer) (*Classifier, error) {
	if scorer == nil {
		return nil, common.ErrMissingScorer
	}
	return &Classifier{scorer: scorer}, nil
}

// Classify returns the final sentiment for one review. Pure function of
// (rating, text); classifying the same pair twice yields the same label.
func (c *Classifier) Classify(review model.Review) model.Sentiment {
	normalized := textnorm.Normalize(review.Text, textnorm.Classification)

	initial := c.initialLabel(review, normalized)
	if initial != model.Negative {
		// Only false negatives are corrected. Positive and Neutral
		// labels never pass through the correction layer.
		return initial
	}

	return c.correctNegative(normalized)
}

// initialLabel is the rating-gated fast path. Ratings of 4 and 5 are
// Positive, 1 and 2 Negative; a middle or absent rating defers to the
// lexicon.
func (c *Classifier) initialLabel(review model.Review, normalized string) model.Sentiment {
	if review.HasRating() {
		switch {
		case review.Rating >= 4:
			return model.Positive
		case review.Rating <= 2:
			return model.Negative
		}
	}
	return c.lexiconLabel(normalized)
}

// correctNegative catches low ratings contradicted by unambiguously
// positive language, e.g. one star under the text "otimo produto".
func (c *Classifier) correctNegative(normalized string) model.Sentiment {
	for _, token := range strings.Fields(normalized) {
		if strongPositiveTerms[token] {
			return model.Positive
		}
	}

	if c.lexiconLabel(normalized) == model.Positive {
		return model.Positive
	}

	return model.Negative
}

// lexiconLabel maps the oracle's compound score into the threshold band.
func (c *Classifier) lexiconLabel(normalized string) model.Sentiment {
	score := c.scorer.Compound(normalized)
	switch {
	case score > positiveThreshold:
		return model.Positive
	case score < negativeThreshold:
		return model.Negative
	default:
		return model.Neutral
	}
}
