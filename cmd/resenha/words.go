package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/engine"
	"github.com/resenha-br/resenha/internal/export"
)

func wordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Tabulate word frequencies by sentiment",
		Long: `Rebuild the per-sentiment word tables from classified reviews.

Every word of every positive review lands in palavras_positivas, every
word of every negative review in palavras_negativas, one row per
occurrence. Neutral reviews are excluded. With --out, both tables are
also written as comma-delimited CSVs from the same snapshot.`,
		RunE: runWords,
	}

	cmd.Flags().StringP("out", "o", "", "Directory to also write the word tables as CSV")

	return cmd
}

func runWords(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	outDir, _ := cmd.Flags().GetString("out")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	cls, err := initClassifier()
	if err != nil {
		return err
	}

	eng := engine.New(store, cls, nil)
	positiveWords, negativeWords, err := eng.PublishWordTables(ctx)
	if errors.Is(err, common.ErrNoReviews) {
		return common.NewUserError("no classified reviews; run 'resenha classify' first", common.ErrNoReviews)
	}
	if err != nil {
		return err
	}
	slog.Info("word tables rebuilt",
		engine.PositiveWordsTable, len(positiveWords),
		engine.NegativeWordsTable, len(negativeWords))

	if outDir == "" {
		return nil
	}

	positivePath := filepath.Join(outDir, engine.PositiveWordsTable+".csv")
	if _, err := export.WriteWordTable(positivePath, positiveWords); err != nil {
		return fmt.Errorf("write %s: %w", positivePath, err)
	}
	negativePath := filepath.Join(outDir, engine.NegativeWordsTable+".csv")
	if _, err := export.WriteWordTable(negativePath, negativeWords); err != nil {
		return fmt.Errorf("write %s: %w", negativePath, err)
	}
	slog.Info("word tables exported", "dir", outDir)
	return nil
}
