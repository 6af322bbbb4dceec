// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/resenha-br/resenha/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Product operations
	SaveProducts(ctx context.Context, products []model.Product) error
	GetProducts(ctx context.Context) ([]model.Product, error)

	// Review operations
	SaveReviews(ctx context.Context, reviews []model.Review) error
	GetReviewByID(ctx context.Context, id string) (*model.Review, error)
	GetReviewsToClassify(ctx context.Context) ([]model.Review, error)

	// Classification operations
	SaveClassification(ctx context.Context, classification *model.Classification) error
	GetClassifications(ctx context.Context) ([]model.Classification, error)
	CountBySentiment(ctx context.Context) (map[model.Sentiment]int, error)

	// Analytical sink: bulk replace of a named table.
	ReplaceTable(ctx context.Context, name string, header []string, rows [][]string) (int64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// CompletionStats shows the results of a classification run.
type CompletionStats struct {
	TotalReviews int
	Positive     int
	Negative     int
	Neutral      int
	WithTopics   int
	Duration     time.Duration
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
