package topics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTagger struct {
	tokens []TaggedToken
	err    error
}

func (f fakeTagger) Tag(_ string) ([]TaggedToken, error) {
	return f.tokens, f.err
}

func TestExtractKeepsNounsOnly(t *testing.T) {
	tagger := fakeTagger{tokens: []TaggedToken{
		{Text: "Produto", Tag: "NN"},
		{Text: "chegou", Tag: "VBD"},
		{Text: "rapido", Tag: "RB"},
		{Text: "Entrega", Tag: "NNP"},
		{Text: "caixas", Tag: "NNS"},
	}}

	assert.Equal(t, []string{"caixas", "entrega", "produto"}, Extract(tagger, "qualquer texto"))
}

func TestExtractDeduplicates(t *testing.T) {
	tagger := fakeTagger{tokens: []TaggedToken{
		{Text: "produto", Tag: "NN"},
		{Text: "Produto", Tag: "NN"},
		{Text: "PRODUTO", Tag: "NNP"},
	}}

	assert.Equal(t, []string{"produto"}, Extract(tagger, "produto produto produto"))
}

func TestExtractFiltersStopwords(t *testing.T) {
	tagger := fakeTagger{tokens: []TaggedToken{
		{Text: "coisa", Tag: "NN"},
		{Text: "dia", Tag: "NN"},
		{Text: "entrega", Tag: "NN"},
	}}

	assert.Equal(t, []string{"entrega"}, Extract(tagger, "coisa dia entrega"))
}

func TestExtractBestEffort(t *testing.T) {
	// Topics degrade to an empty set; they never propagate failure.
	assert.Nil(t, Extract(nil, "texto"))
	assert.Nil(t, Extract(fakeTagger{err: errors.New("model unavailable")}, "texto"))
	assert.Nil(t, Extract(fakeTagger{tokens: nil}, "texto"))
	assert.Nil(t, Extract(fakeTagger{}, ""))
}
