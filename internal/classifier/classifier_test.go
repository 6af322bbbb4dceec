package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/lexicon"
	"github.com/resenha-br/resenha/internal/model"
)

// stubScorer returns a fixed compound score per normalized text, with a
// default for anything unlisted.
type stubScorer struct {
	scores map[string]float64
}

func (s stubScorer) Compound(text string) float64 {
	return s.scores[text]
}

func newClassifier(t *testing.T, scorer Scorer) *Classifier {
	t.Helper()
	c, err := New(scorer)
	require.NoError(t, err)
	return c
}

func TestNewRequiresScorer(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, common.ErrMissingScorer)
}

func TestRatingGate(t *testing.T) {
	c := newClassifier(t, stubScorer{})

	tests := []struct {
		name   string
		text   string
		rating int
		want   model.Sentiment
	}{
		{"five stars empty text", "", 5, model.Positive},
		{"four stars", "tanto faz", 4, model.Positive},
		{"high rating with negative text stays positive", "produto pessimo", 5, model.Positive},
		{"absent rating neutral text", "caixa papelao", model.RatingAbsent, model.Neutral},
		{"empty review entirely", "", model.RatingAbsent, model.Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(model.Review{Rating: tt.rating, Text: tt.text})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThresholdBandIsExclusive(t *testing.T) {
	scorer := stubScorer{scores: map[string]float64{
		"na borda de cima":  0.05,
		"na borda de baixo": -0.05,
		"acima da borda":    0.051,
		"abaixo da borda":   -0.051,
	}}
	c := newClassifier(t, scorer)

	assert.Equal(t, model.Neutral, c.Classify(model.Review{Text: "na borda de cima"}))
	assert.Equal(t, model.Neutral, c.Classify(model.Review{Text: "na borda de baixo"}))
	assert.Equal(t, model.Positive, c.Classify(model.Review{Text: "acima da borda"}))
	assert.Equal(t, model.Negative, c.Classify(model.Review{Text: "abaixo da borda"}))
}

func TestCorrectionStrongTermOverride(t *testing.T) {
	// Scorer insists everything is negative; the term list must still win.
	scorer := stubScorer{scores: map[string]float64{
		"amei muito":    -0.9,
		"otimo produto": -0.9,
	}}
	c := newClassifier(t, scorer)

	assert.Equal(t, model.Positive, c.Classify(model.Review{Rating: 1, Text: "amei muito"}))
	assert.Equal(t, model.Positive, c.Classify(model.Review{Rating: 1, Text: "Ótimo produto!"}))
}

func TestCorrectionRequiresExactToken(t *testing.T) {
	// "otimos" contains the stem "otimo" as a substring but is not an
	// exact token match, and the scorer stays non-positive.
	c := newClassifier(t, stubScorer{scores: map[string]float64{"otimos precos": -0.3}})
	assert.Equal(t, model.Negative, c.Classify(model.Review{Rating: 1, Text: "otimos precos"}))
}

func TestCorrectionSecondLexiconPass(t *testing.T) {
	// Low star rating, no strong term, but the lexicon reads the text as
	// positive: correction flips the label.
	c := newClassifier(t, stubScorer{scores: map[string]float64{"gostei bastante": 0.4}})
	assert.Equal(t, model.Positive, c.Classify(model.Review{Rating: 1, Text: "gostei bastante"}))
}

func TestNegativeStaysNegative(t *testing.T) {
	c := newClassifier(t, stubScorer{scores: map[string]float64{"produto pessimo": -0.6}})
	assert.Equal(t, model.Negative, c.Classify(model.Review{Rating: 1, Text: "produto pessimo"}))
}

func TestRatingThreeUsesLexiconThenCorrection(t *testing.T) {
	scorer := stubScorer{scores: map[string]float64{
		"otimo":         0.6,
		"mais ou menos": 0.0,
		"show de bola":  -0.2, // initial Negative at rating 3, corrected by term list
	}}
	c := newClassifier(t, scorer)

	assert.Equal(t, model.Positive, c.Classify(model.Review{Rating: 3, Text: "otimo"}))
	assert.Equal(t, model.Neutral, c.Classify(model.Review{Rating: 3, Text: "mais ou menos"}))
	assert.Equal(t, model.Positive, c.Classify(model.Review{Rating: 3, Text: "show de bola"}))
}

func TestNeutralNeverDemoted(t *testing.T) {
	// A neutral initial label skips correction entirely, even when the
	// text carries a strong-positive term the correction would act on.
	c := newClassifier(t, stubScorer{scores: map[string]float64{"achei show sei la": 0.0}})
	assert.Equal(t, model.Neutral, c.Classify(model.Review{Rating: 3, Text: "achei show sei la"}))
}

func TestClassifyIsIdempotent(t *testing.T) {
	a, err := lexicon.New()
	require.NoError(t, err)
	c := newClassifier(t, a)

	review := model.Review{Rating: 2, Text: "Não gostei, veio com defeito."}
	first := c.Classify(review)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(review))
	}
}

func TestWithRealLexicon(t *testing.T) {
	a, err := lexicon.New()
	require.NoError(t, err)
	c := newClassifier(t, a)

	tests := []struct {
		name   string
		text   string
		rating int
		want   model.Sentiment
	}{
		{"one star but loved it", "Amei! Chegou rápido.", 1, model.Positive},
		{"one star and hated it", "Produto péssimo, veio quebrado.", 1, model.Negative},
		{"three stars praising", "ótimo", 3, model.Positive},
		{"no rating, complaint", "péssimo, me arrependi", model.RatingAbsent, model.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(model.Review{Rating: tt.rating, Text: tt.text})
			assert.Equal(t, tt.want, got)
		})
	}
}
