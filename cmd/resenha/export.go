package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export classified reviews as pipe-delimited CSV",
		Long: `Write every classified review to a pipe-delimited CSV file with the
input columns plus sentimento and topicos. Reviews without a star rating
get an empty rating field.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	classifications, err := store.GetClassifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to load classifications: %w", err)
	}
	if len(classifications) == 0 {
		return common.NewUserError("no classified reviews; run 'resenha classify' first", common.ErrNoReviews)
	}

	written, err := export.WriteClassified(path, classifications)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	slog.Info("export complete", "file", path, "rows", written)
	return nil
}
