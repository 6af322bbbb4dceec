package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenha-br/resenha/internal/model"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadReviewCSV(t *testing.T) {
	path := writeTestCSV(t, `id_comentario|id_produto|rating_do_comentario|comentario_about_produto
r1|p1|5|Ótimo produto, recomendo
r2|p1|sem nota|Chegou atrasado
r3|p2|2|Não gostei|coluna extra ignorada
`)

	reviews, err := readReviewCSV(path)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, "r1", reviews[0].ID)
	assert.Equal(t, "p1", reviews[0].ProductID)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Ótimo produto, recomendo", reviews[0].Text)

	assert.Equal(t, model.RatingAbsent, reviews[1].Rating)
	assert.Equal(t, 2, reviews[2].Rating)
}

func TestReadReviewCSVNoHeader(t *testing.T) {
	path := writeTestCSV(t, "r1|p1|4|Bom\n")

	reviews, err := readReviewCSV(path)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}

func TestReadReviewCSVSkipsEmptyID(t *testing.T) {
	path := writeTestCSV(t, "|p1|4|Bom\nr2|p1|3|Ok\n")

	reviews, err := readReviewCSV(path)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "r2", reviews[0].ID)
}

func TestReadReviewCSVSkipsShortRows(t *testing.T) {
	path := writeTestCSV(t, "r1|p1|5|Bom\nr2|p1\nr3|p1|1|Ruim\n")

	reviews, err := readReviewCSV(path)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r1", reviews[0].ID)
	assert.Equal(t, "r3", reviews[1].ID)
}

func TestReadReviewCSVBareQuotes(t *testing.T) {
	path := writeTestCSV(t, "r1|p1|5|disse \"bom demais\" e recomendo\n")

	reviews, err := readReviewCSV(path)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, `disse "bom demais" e recomendo`, reviews[0].Text)
}

func TestParseImportRating(t *testing.T) {
	assert.Equal(t, 3, parseImportRating("3"))
	assert.Equal(t, 4, parseImportRating("4.0"))
	assert.Equal(t, model.RatingAbsent, parseImportRating(""))
	assert.Equal(t, model.RatingAbsent, parseImportRating("ruim"))
	assert.Equal(t, model.RatingAbsent, parseImportRating("0"))
	assert.Equal(t, model.RatingAbsent, parseImportRating("6"))
}
