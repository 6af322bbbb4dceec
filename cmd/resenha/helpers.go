package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/resenha-br/resenha/internal/classifier"
	"github.com/resenha-br/resenha/internal/config"
	"github.com/resenha-br/resenha/internal/lexicon"
	"github.com/resenha-br/resenha/internal/scraper"
	"github.com/resenha-br/resenha/internal/service"
	"github.com/resenha-br/resenha/internal/storage"
)

// initStorage opens the database at the configured path and brings the
// schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initClassifier builds the hybrid classifier backed by the embedded
// sentiment lexicon.
func initClassifier() (*classifier.Classifier, error) {
	analyzer, err := lexicon.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentiment lexicon: %w", err)
	}
	return classifier.New(analyzer)
}

// initScraper builds the retrieval client from config.
func initScraper() *scraper.Scraper {
	cfg := scraper.DefaultConfig()
	if base := viper.GetString("scraper.review_api_base"); base != "" {
		cfg.ReviewAPIBase = base
	}
	if size := viper.GetInt("scraper.page_size"); size > 0 {
		cfg.PageSize = size
	}
	return scraper.New(nil, cfg)
}
