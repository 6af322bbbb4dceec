package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/model"
)

// SaveProducts upserts scraped products by ID.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `INSERT INTO products (id, sku, title, category, url, collected_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sku = excluded.sku,
			title = excluded.title,
			category = excluded.category,
			url = excluded.url`

	for _, p := range products {
		if _, err := tx.ExecContext(ctx, query, p.ID, p.SKU, p.Title, p.Category, p.URL, p.CollectedAt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit products: %w", err)
	}

	slog.Debug("saved products", "count", len(products))
	return nil
}

// GetProducts returns all scraped products.
func (s *SQLiteStorage) GetProducts(ctx context.Context) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sku, title, category, url, collected_at
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Title, &p.Category, &p.URL, &p.CollectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// SaveReviews upserts raw reviews by ID. Re-ingesting the same review is
// harmless; the retrieval layer only guarantees at-most-once per pass.
func (s *SQLiteStorage) SaveReviews(ctx context.Context, reviews []model.Review) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateReviews(reviews); err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `INSERT INTO reviews (id, product_id, rating, text, collected_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			product_id = excluded.product_id,
			rating = excluded.rating,
			text = excluded.text`

	for _, r := range reviews {
		if _, err := tx.ExecContext(ctx, query, r.ID, r.ProductID, r.Rating, r.Text, r.CollectedAt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save review %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reviews: %w", err)
	}

	slog.Debug("saved reviews", "count", len(reviews))
	return nil
}

// GetReviewByID returns a single review or common.ErrNotFound.
func (s *SQLiteStorage) GetReviewByID(ctx context.Context, id string) (*model.Review, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var r model.Review
	err := s.db.QueryRowContext(ctx, `
		SELECT id, product_id, rating, text, collected_at
		FROM reviews WHERE id = ?`, id).
		Scan(&r.ID, &r.ProductID, &r.Rating, &r.Text, &r.CollectedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("review %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	return &r, nil
}

// GetReviewsToClassify returns reviews without a classification row yet.
func (s *SQLiteStorage) GetReviewsToClassify(ctx context.Context) ([]model.Review, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.product_id, r.rating, r.text, r.collected_at
		FROM reviews r
		LEFT JOIN classifications c ON c.review_id = r.id
		WHERE c.review_id IS NULL
		ORDER BY r.collected_at, r.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unclassified reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Rating, &r.Text, &r.CollectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	slog.Debug("retrieved unclassified reviews", "count", len(reviews))
	return reviews, nil
}
