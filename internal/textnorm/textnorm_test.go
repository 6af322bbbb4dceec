package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Produto BOM", "produto bom"},
		{"folds accents", "ótimo", "otimo"},
		{"folds cedilla", "ação", "acao"},
		{"deletes digits", "chegou em 2 dias", "chegou em  dias"},
		{"deletes punctuation without replacing", "bom,produto", "bomproduto"},
		{"empty", "", ""},
		{"all punctuation", "!!! ??? ...", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, Classification))
		})
	}
}

func TestNormalizeIndexing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps acute accents", "ótimo", "ótimo"},
		{"keeps tilde and cedilla", "não funcionação", "não funcionação"},
		{"lowercases accented", "Ótimo", "ótimo"},
		{"drops circumflex letters", "você", "voc"},
		{"drops digits", "nota 10", "nota "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, Indexing))
		})
	}
}

func TestVariantsDiverge(t *testing.T) {
	// The same input must fold in one variant and survive in the other.
	assert.Equal(t, "otimo", Normalize("ótimo", Classification))
	assert.Equal(t, "ótimo", Normalize("ótimo", Indexing))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"otimo", "produto"}, Words("Ótimo produto!", Classification))
	assert.Empty(t, Words("!!!", Classification))
	assert.Equal(t, []string{"ótimo", "ótimo"}, Words("ótimo ótimo", Indexing))
}
