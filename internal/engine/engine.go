// Package engine orchestrates the classification pipeline: it drains the
// queue of unclassified reviews, labels each one, extracts topics, persists
// the results, and publishes the tabular output tables.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/resenha-br/resenha/internal/classifier"
	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/export"
	"github.com/resenha-br/resenha/internal/model"
	"github.com/resenha-br/resenha/internal/service"
	"github.com/resenha-br/resenha/internal/tabulator"
	"github.com/resenha-br/resenha/internal/topics"
)

// Published table names. ReplaceTable drops and recreates these wholesale,
// so reruns always reflect the latest classification state.
const (
	ClassifiedTable    = "comentarios_classificados"
	PositiveWordsTable = "palavras_positivas"
	NegativeWordsTable = "palavras_negativas"
)

// ClassificationEngine wires storage, the classifier, and the optional
// topic tagger into one pipeline.
type ClassificationEngine struct {
	storage    service.Storage
	classifier *classifier.Classifier
	tagger     topics.Tagger
	progress   io.Writer
}

// Config holds configuration options for the engine.
type Config struct {
	// ProgressWriter receives the progress bar; nil disables it.
	ProgressWriter io.Writer
}

// New creates an engine. A nil tagger skips topic extraction entirely.
func New(storage service.Storage, cls *classifier.Classifier, tagger topics.Tagger) *ClassificationEngine {
	return NewWithConfig(storage, cls, tagger, Config{})
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(storage service.Storage, cls *classifier.Classifier, tagger topics.Tagger, config Config) *ClassificationEngine {
	return &ClassificationEngine{
		storage:    storage,
		classifier: cls,
		tagger:     tagger,
		progress:   config.ProgressWriter,
	}
}

// ClassifyPending labels every unclassified review and persists the
// results one at a time, so an interrupted run resumes where it stopped.
func (e *ClassificationEngine) ClassifyPending(ctx context.Context) (*service.CompletionStats, error) {
	start := time.Now()

	reviews, err := e.storage.GetReviewsToClassify(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews to classify: %w", err)
	}

	stats := &service.CompletionStats{TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		slog.Info("no reviews to classify")
		stats.Duration = time.Since(start)
		return stats, nil
	}

	slog.Info("starting classification", "count", len(reviews))
	bar := e.newProgressBar(len(reviews))

	for _, review := range reviews {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		classification := model.Classification{
			Review:       review,
			Sentiment:    e.classifier.Classify(review),
			Topics:       topics.Extract(e.tagger, review.Text),
			ClassifiedAt: time.Now().UTC(),
		}

		if err := e.storage.SaveClassification(ctx, &classification); err != nil {
			return stats, fmt.Errorf("save classification for review %s: %w", review.ID, err)
		}

		switch classification.Sentiment {
		case model.Positive:
			stats.Positive++
		case model.Negative:
			stats.Negative++
		case model.Neutral:
			stats.Neutral++
		}
		if len(classification.Topics) > 0 {
			stats.WithTopics++
		}
		_ = bar.Add(1)
	}

	_ = bar.Finish()
	stats.Duration = time.Since(start)
	slog.Info("classification complete",
		"total", stats.TotalReviews,
		"positive", stats.Positive,
		"negative", stats.Negative,
		"neutral", stats.Neutral,
		"with_topics", stats.WithTopics,
		"duration", stats.Duration.Round(time.Millisecond))
	return stats, nil
}

// PublishClassified rebuilds the classified-reviews table from the current
// classification state.
func (e *ClassificationEngine) PublishClassified(ctx context.Context) (int64, error) {
	classifications, err := e.storage.GetClassifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("load classifications: %w", err)
	}

	rows := export.AssembleRows(classifications)
	written, err := e.storage.ReplaceTable(ctx, ClassifiedTable, export.ClassifiedHeader, rows)
	if err != nil {
		return 0, fmt.Errorf("publish %s: %w", ClassifiedTable, err)
	}
	return written, nil
}

// PublishWordTables rebuilds both per-sentiment word tables from a single
// snapshot of the classification state. Neutral reviews contribute to
// neither. The returned occurrences are exactly the rows written, so
// callers deriving CSV artifacts work from the same snapshot instead of
// re-reading storage. Returns common.ErrNoReviews when nothing is
// classified yet.
func (e *ClassificationEngine) PublishWordTables(ctx context.Context) (positiveWords, negativeWords []model.WordOccurrence, err error) {
	classifications, err := e.storage.GetClassifications(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load classifications: %w", err)
	}
	if len(classifications) == 0 {
		return nil, nil, common.ErrNoReviews
	}

	positiveWords, negativeWords = tabulator.Tabulate(classifications)

	if _, err := e.storage.ReplaceTable(ctx, PositiveWordsTable, export.WordTableHeader, wordRows(positiveWords)); err != nil {
		return nil, nil, fmt.Errorf("publish %s: %w", PositiveWordsTable, err)
	}
	if _, err := e.storage.ReplaceTable(ctx, NegativeWordsTable, export.WordTableHeader, wordRows(negativeWords)); err != nil {
		return nil, nil, fmt.Errorf("publish %s: %w", NegativeWordsTable, err)
	}
	return positiveWords, negativeWords, nil
}

func wordRows(occurrences []model.WordOccurrence) [][]string {
	rows := make([][]string, len(occurrences))
	for i, occ := range occurrences {
		rows[i] = []string{occ.Word, occ.ReviewID}
	}
	return rows
}

func (e *ClassificationEngine) newProgressBar(total int) *progressbar.ProgressBar {
	writer := e.progress
	if writer == nil {
		writer = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Classifying reviews..."),
	)
}
