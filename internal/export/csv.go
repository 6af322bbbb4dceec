// Package export writes the pipeline's tabular artifacts to CSV files:
// the pipe-delimited classified-review table and the comma-delimited
// word-frequency tables.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/resenha-br/resenha/internal/model"
)

// WordTableHeader is the header row of both word-frequency CSVs.
var WordTableHeader = []string{"palavra", "id_comentario"}

// ClassifiedHeader is the header row of the classified-review CSV. It is
// the input schema plus the derived sentiment and topic columns.
var ClassifiedHeader = []string{
	"id_comentario",
	"id_produto",
	"rating_do_comentario",
	"comentario_about_produto",
	"sentimento",
	"topicos",
}

// WriteWordTable writes one word-frequency table as comma-delimited CSV
// with a header row and no index column. Returns the data row count.
func WriteWordTable(path string, occurrences []model.WordOccurrence) (int, error) {
	rows := make([][]string, 0, len(occurrences))
	for _, occ := range occurrences {
		rows = append(rows, []string{occ.Word, occ.ReviewID})
	}
	return writeCSV(path, ',', WordTableHeader, rows)
}

// WriteClassified writes the classified-review table as pipe-delimited
// CSV, column-for-column the input schema plus sentimento and topicos.
func WriteClassified(path string, classifications []model.Classification) (int, error) {
	return writeCSV(path, '|', ClassifiedHeader, AssembleRows(classifications))
}

// AssembleRows converts classifications into the sink's row shape,
// matching ClassifiedHeader.
func AssembleRows(classifications []model.Classification) [][]string {
	rows := make([][]string, 0, len(classifications))
	for _, c := range classifications {
		rating := ""
		if c.Review.HasRating() {
			rating = strconv.Itoa(c.Review.Rating)
		}
		rows = append(rows, []string{
			c.Review.ID,
			c.Review.ProductID,
			rating,
			c.Review.Text,
			c.Sentiment.String(),
			c.TopicsColumn(),
		})
	}
	return rows
}

func writeCSV(path string, delimiter rune, header []string, rows [][]string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = delimiter

	if err := w.Write(header); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return 0, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}

	return len(rows), nil
}
