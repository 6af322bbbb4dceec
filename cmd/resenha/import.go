package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/resenha-br/resenha/internal/model"
	"github.com/resenha-br/resenha/internal/scraper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>...",
		Short: "Import pipe-delimited review CSVs",
		Long: `Import reviews from pipe-delimited CSV files into the local database.

Expected columns: id_comentario|id_produto|rating_do_comentario|comentario_about_produto.
Extra trailing columns are ignored and a header row is skipped automatically.
Reviews are deduplicated by id.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Parse files without saving anything")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var reviews []model.Review
	for _, path := range args {
		parsed, err := readReviewCSV(path)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		slog.Info("parsed review file", "file", path, "reviews", len(parsed))
		reviews = append(reviews, parsed...)
	}

	if dryRun {
		slog.Info("dry run, nothing saved", "reviews", len(reviews))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveReviews(ctx, reviews); err != nil {
		return fmt.Errorf("failed to save reviews: %w", err)
	}

	slog.Info("import complete", "files", len(args), "reviews", len(reviews))
	return nil
}

// readReviewCSV parses one pipe-delimited review file.
func readReviewCSV(path string) ([]model.Review, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.Comma = '|'
	// Free-text comments carry stray quotes; tolerate them per field
	// instead of failing the file.
	reader.LazyQuotes = true
	// Source exports sometimes carry extra columns; only the first four
	// matter.
	reader.FieldsPerRecord = -1

	var reviews []model.Review
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		if len(record) < 4 {
			// One malformed record never aborts the batch.
			slog.Warn("skipping malformed row", "file", path, "line", line, "columns", len(record))
			continue
		}
		if line == 1 && record[0] == "id_comentario" {
			continue
		}
		if record[0] == "" {
			slog.Warn("skipping row without review id", "file", path, "line", line)
			continue
		}

		reviews = append(reviews, model.Review{
			ID:          record[0],
			ProductID:   record[1],
			Rating:      parseImportRating(record[2]),
			Text:        scraper.Sanitize(record[3]),
			CollectedAt: time.Now().UTC(),
		})
	}
	return reviews, nil
}

// parseImportRating mirrors the fetch path: anything unparseable or
// outside 1..5 means the rating is absent, never an import failure.
func parseImportRating(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return model.RatingAbsent
		}
		value = int(f)
	}
	if value < 1 || value > 5 {
		return model.RatingAbsent
	}
	return value
}
