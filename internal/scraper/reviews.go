package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/model"
)

// Review API payload shapes. Ratings occasionally arrive as strings, so
// they decode through json.Number and fall back to absent.
type reviewSummary struct {
	Reviews []reviewProduct `json:"reviews"`
}

type reviewProduct struct {
	ID          string       `json:"_id"`
	ReviewCount int          `json:"reviewCount"`
	Reviews     []reviewItem `json:"reviews"`
}

type reviewItem struct {
	ID     string      `json:"_id"`
	Rating json.Number `json:"rating"`
	Text   string      `json:"text"`
}

// FetchReviews pulls every review page for one SKU, sanitizing text and
// deduplicating by review ID within the pass.
func (s *Scraper) FetchReviews(ctx context.Context, sku string) ([]model.Review, error) {
	if sku == "" {
		return nil, fmt.Errorf("sku cannot be empty: %w", common.ErrInvalidConfig)
	}

	var (
		reviews []model.Review
		seen    = make(map[string]bool)
	)

	// maxPages bounds the pagination walk in case the API keeps serving
	// full pages.
	const maxPages = 50

	for page := 1; page <= maxPages; page++ {
		summary, err := s.fetchSummaryPage(ctx, sku, page)
		if err != nil {
			return nil, err
		}

		var pageCount int
		for _, product := range summary.Reviews {
			for _, item := range product.Reviews {
				pageCount++
				if item.ID == "" || seen[item.ID] {
					continue
				}
				seen[item.ID] = true

				reviews = append(reviews, model.Review{
					ID:          item.ID,
					ProductID:   product.ID,
					Rating:      parseRating(item.Rating),
					Text:        Sanitize(item.Text),
					CollectedAt: time.Now().UTC(),
				})
			}
		}

		if pageCount < s.cfg.PageSize {
			break
		}
	}

	slog.Debug("fetched reviews", "sku", sku, "count", len(reviews))
	return reviews, nil
}

func (s *Scraper) fetchSummaryPage(ctx context.Context, sku string, page int) (reviewSummary, error) {
	url := fmt.Sprintf("%s/%s/summary/helpfulScore,desc?pageSize=%d&page=%d",
		s.cfg.ReviewAPIBase, sku, s.cfg.PageSize, page)

	var summary reviewSummary
	err := common.WithRetry(ctx, func() error {
		resp, err := s.get(ctx, url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
			return fmt.Errorf("decode review summary: %w", err)
		}
		return nil
	}, s.cfg.Retry)

	if err != nil {
		return reviewSummary{}, fmt.Errorf("fetch reviews for %s page %d: %w", sku, page, err)
	}
	return summary, nil
}

// parseRating coerces the API's rating value, returning RatingAbsent for
// anything outside 1..5 or unparseable. Malformed ratings never abort the
// batch; those reviews just classify through the lexicon branch.
func parseRating(raw json.Number) int {
	value, err := raw.Int64()
	if err != nil {
		f, ferr := raw.Float64()
		if ferr != nil {
			return model.RatingAbsent
		}
		value = int64(f)
	}
	if value < 1 || value > 5 {
		return model.RatingAbsent
	}
	return int(value)
}
