package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentString(t *testing.T) {
	assert.Equal(t, "Positivo", Positive.String())
	assert.Equal(t, "Negativo", Negative.String())
	assert.Equal(t, "Neutro", Neutral.String())
}

func TestSentimentJSONRoundTrip(t *testing.T) {
	for _, s := range []Sentiment{Positive, Negative, Neutral} {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var back Sentiment
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, s, back)
	}

	var s Sentiment
	assert.Error(t, json.Unmarshal([]byte(`"Otimista"`), &s))
}

func TestTopicsColumnRoundTrip(t *testing.T) {
	c := Classification{Topics: []string{"entrega", "produto", "caixa"}}

	column := c.TopicsColumn()
	assert.Equal(t, "caixa; entrega; produto", column)
	assert.Equal(t, []string{"caixa", "entrega", "produto"}, SplitTopicsColumn(column))

	assert.Empty(t, Classification{}.TopicsColumn())
	assert.Nil(t, SplitTopicsColumn(""))
}

func TestReviewHasRating(t *testing.T) {
	assert.True(t, Review{Rating: 1}.HasRating())
	assert.True(t, Review{Rating: 5}.HasRating())
	assert.False(t, Review{Rating: RatingAbsent}.HasRating())
	assert.False(t, Review{Rating: 7}.HasRating())
}
