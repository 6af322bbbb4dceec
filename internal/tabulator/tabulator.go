// Package tabulator builds the per-sentiment word-frequency tables from
// classified reviews. Only polarized reviews contribute: Neutral ones are
// excluded entirely, since only polarized language is considered
// informative for the frequency tables.
package tabulator

import (
	"github.com/resenha-br/resenha/internal/model"
	"github.com/resenha-br/resenha/internal/textnorm"
)

// Tabulate partitions classifications by final sentiment and emits one
// WordOccurrence per token occurrence, multiplicity preserved. Words come
// from the indexing normalization so accented spelling survives into the
// published tables. No dedup, no sorting; row order follows input order.
func Tabulate(classifications []model.Classification) (positive, negative []model.WordOccurrence) {
	for _, c := range classifications {
		switch c.Sentiment {
		case model.Positive:
			positive = append(positive, occurrences(c.Review)...)
		case model.Negative:
			negative = append(negative, occurrences(c.Review)...)
		case model.Neutral:
			// Excluded by design.
		}
	}
	return positive, negative
}

func occurrences(review model.Review) []model.WordOccurrence {
	words := textnorm.Words(review.Text, textnorm.Indexing)
	if len(words) == 0 {
		return nil
	}

	rows := make([]model.WordOccurrence, 0, len(words))
	for _, word := range words {
		rows = append(rows, model.WordOccurrence{Word: word, ReviewID: review.ID})
	}
	return rows
}
