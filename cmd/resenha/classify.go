// Package main contains the resenha CLI commands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/resenha-br/resenha/internal/engine"
	"github.com/resenha-br/resenha/internal/topics"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify unlabeled reviews",
		Long: `Run the hybrid classifier over every review without a label.

Each review gets a sentiment from its star rating when decisive, from the
sentiment lexicon otherwise, with a correction pass that rescues negative
labels carrying strongly positive language. Noun topics are extracted
unless disabled. Results persist incrementally, so an interrupted run
picks up where it left off.`,
		RunE: runClassifyReviews,
	}

	cmd.Flags().Bool("no-topics", false, "Skip part-of-speech topic extraction")
	cmd.Flags().Bool("publish", true, "Rebuild the classified-review table after labeling")

	_ = viper.BindPFlag("classification.no_topics", cmd.Flags().Lookup("no-topics"))

	return cmd
}

func runClassifyReviews(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	noTopics := viper.GetBool("classification.no_topics")
	publish, _ := cmd.Flags().GetBool("publish")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	cls, err := initClassifier()
	if err != nil {
		return err
	}

	var tagger topics.Tagger
	if !noTopics {
		tagger = topics.NewProseTagger()
	}

	eng := engine.NewWithConfig(store, cls, tagger, engine.Config{
		ProgressWriter: os.Stderr,
	})

	stats, err := eng.ClassifyPending(ctx)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if publish && stats.TotalReviews > 0 {
		written, publishErr := eng.PublishClassified(ctx)
		if publishErr != nil {
			return publishErr
		}
		slog.Info("classified table rebuilt", "table", engine.ClassifiedTable, "rows", written)
	}

	return nil
}
