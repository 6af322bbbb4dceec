package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resenha-br/resenha/internal/model"
)

// SaveClassification upserts the final label and topics for one review.
func (s *SQLiteStorage) SaveClassification(ctx context.Context, classification *model.Classification) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if classification == nil {
		return fmt.Errorf("classification cannot be nil")
	}
	if err := validateString(classification.Review.ID, "review id"); err != nil {
		return err
	}

	query := `INSERT INTO classifications (review_id, sentiment, topics, classified_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(review_id) DO UPDATE SET
			sentiment = excluded.sentiment,
			topics = excluded.topics,
			classified_at = excluded.classified_at`

	_, err := s.db.ExecContext(ctx, query,
		classification.Review.ID,
		classification.Sentiment.String(),
		classification.TopicsColumn(),
		classification.ClassifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save classification for %s: %w", classification.Review.ID, err)
	}

	return nil
}

// GetClassifications returns every classified review joined with its
// original record, in stable review order.
func (s *SQLiteStorage) GetClassifications(ctx context.Context) ([]model.Classification, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.product_id, r.rating, r.text, r.collected_at,
		       c.sentiment, c.topics, c.classified_at
		FROM classifications c
		JOIN reviews r ON r.id = c.review_id
		ORDER BY r.collected_at, r.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query classifications: %w", err)
	}
	defer rows.Close()

	var classifications []model.Classification
	for rows.Next() {
		var (
			c      model.Classification
			label  string
			topics string
		)
		if err := rows.Scan(
			&c.Review.ID, &c.Review.ProductID, &c.Review.Rating, &c.Review.Text, &c.Review.CollectedAt,
			&label, &topics, &c.ClassifiedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan classification: %w", err)
		}

		sentiment, err := model.ParseSentiment(label)
		if err != nil {
			return nil, fmt.Errorf("corrupt classification for %s: %w", c.Review.ID, err)
		}
		c.Sentiment = sentiment
		c.Topics = model.SplitTopicsColumn(topics)
		classifications = append(classifications, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classifications: %w", err)
	}

	slog.Debug("retrieved classifications", "count", len(classifications))
	return classifications, nil
}

// CountBySentiment returns how many reviews carry each final label.
func (s *SQLiteStorage) CountBySentiment(ctx context.Context) (map[model.Sentiment]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT sentiment, COUNT(*)
		FROM classifications
		GROUP BY sentiment`)
	if err != nil {
		return nil, fmt.Errorf("failed to count classifications: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Sentiment]int)
	for rows.Next() {
		var (
			label string
			count int
		)
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		sentiment, err := model.ParseSentiment(label)
		if err != nil {
			return nil, err
		}
		counts[sentiment] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}

	return counts, nil
}
