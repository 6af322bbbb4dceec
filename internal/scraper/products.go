package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/model"
)

// reviewWidgetSelector locates the review widget that carries the SKU the
// review API is keyed by.
const reviewWidgetSelector = "div.konfidency-reviews-summary"

// ScrapeProduct fetches one product page and extracts the review SKU.
// Pages without the review widget return common.ErrNotFound.
func (s *Scraper) ScrapeProduct(ctx context.Context, pageURL string) (model.Product, error) {
	var product model.Product

	err := common.WithRetry(ctx, func() error {
		resp, err := s.get(ctx, pageURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return fmt.Errorf("parse product page: %w", err)
		}

		sku, ok := doc.Find(reviewWidgetSelector).First().Attr("data-sku")
		if !ok || sku == "" {
			return &common.RetryableError{
				Err:       fmt.Errorf("product page %s: review widget sku: %w", pageURL, common.ErrNotFound),
				Retryable: false,
			}
		}

		title := Sanitize(doc.Find("h1").First().Text())

		product = model.Product{
			ID:          sku,
			SKU:         sku,
			Title:       title,
			URL:         pageURL,
			CollectedAt: time.Now().UTC(),
		}
		return nil
	}, s.cfg.Retry)

	if err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// ScrapeProducts walks a list of product page URLs, skipping pages that
// fail or lack the review widget. A page failure never aborts the pass.
func (s *Scraper) ScrapeProducts(ctx context.Context, pageURLs []string) ([]model.Product, error) {
	products := make([]model.Product, 0, len(pageURLs))
	for _, pageURL := range pageURLs {
		if err := ctx.Err(); err != nil {
			return products, err
		}

		product, err := s.ScrapeProduct(ctx, pageURL)
		if err != nil {
			slog.Warn("skipping product page", "url", pageURL, "error", err)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}
