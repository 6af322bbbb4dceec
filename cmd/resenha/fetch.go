package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/model"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Collect products and reviews from the store",
	}

	cmd.AddCommand(fetchProductsCmd())
	cmd.AddCommand(fetchReviewsCmd())

	return cmd
}

func fetchProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products <url>...",
		Short: "Scrape product pages and record their review SKUs",
		Long: `Scrape each product page, extract the review-widget SKU that keys
the review API, and store the product. Pages without a review widget are
skipped with a warning.

The product page carries no category; pass --category to record the
listing category the URLs came from.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFetchProducts,
	}

	cmd.Flags().StringP("category", "c", "", "Category label recorded on every fetched product")

	return cmd
}

func runFetchProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	products, err := initScraper().ScrapeProducts(ctx, args)
	if err != nil {
		return fmt.Errorf("product scrape aborted: %w", err)
	}
	if len(products) == 0 {
		return common.NewUserError("none of the given pages had a review widget", common.ErrNotFound)
	}

	category, _ := cmd.Flags().GetString("category")
	applyCategory(products, category)

	if err := store.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	slog.Info("products saved", "count", len(products), "requested", len(args))
	return nil
}

// applyCategory stamps the listing category onto every scraped product.
func applyCategory(products []model.Product, category string) {
	if category == "" {
		return
	}
	for i := range products {
		products[i].Category = category
	}
}

func fetchReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews [sku...]",
		Short: "Pull reviews from the review API",
		Long: `Fetch every review page for the given SKUs and store the sanitized
reviews. Without arguments, fetches reviews for all stored products.`,
		RunE: runFetchReviews,
	}
}

func runFetchReviews(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	skus := args
	if len(skus) == 0 {
		products, listErr := store.GetProducts(ctx)
		if listErr != nil {
			return fmt.Errorf("failed to list products: %w", listErr)
		}
		for _, product := range products {
			skus = append(skus, product.SKU)
		}
	}
	if len(skus) == 0 {
		return common.NewUserError("no products stored; run 'resenha fetch products' first or pass SKUs", common.ErrNotFound)
	}

	s := initScraper()
	total := 0
	for _, sku := range skus {
		reviews, fetchErr := s.FetchReviews(ctx, sku)
		if fetchErr != nil {
			slog.Warn("skipping sku", "sku", sku, "error", fetchErr)
			continue
		}
		if len(reviews) == 0 {
			slog.Warn("no reviews for sku", "sku", sku)
			continue
		}

		if err := store.SaveReviews(ctx, reviews); err != nil {
			return fmt.Errorf("failed to save reviews for %s: %w", sku, err)
		}
		total += len(reviews)
		slog.Info("reviews saved", "sku", sku, "count", len(reviews))
	}

	if total == 0 {
		return fmt.Errorf("no reviews fetched: %w", common.ErrNoReviews)
	}
	slog.Info("fetch complete", "skus", len(skus), "reviews", total)
	return nil
}
