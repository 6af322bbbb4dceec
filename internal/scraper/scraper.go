// Package scraper is the retrieval layer: it scrapes product pages for
// their review-widget SKU and pulls raw reviews from the review JSON API.
// Everything downstream treats its output as an immutable record stream.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/service"
)

// DefaultReviewAPIBase is the public review summary API.
const DefaultReviewAPIBase = "https://reviews-api.konfidency.com.br/casasbahia"

// DefaultPageSize matches the API's maximum summary page.
const DefaultPageSize = 100

// Config tunes the scraper.
type Config struct {
	ReviewAPIBase string
	PageSize      int
	Timeout       time.Duration
	Retry         service.RetryOptions
}

// DefaultConfig returns the scraper defaults.
func DefaultConfig() Config {
	return Config{
		ReviewAPIBase: DefaultReviewAPIBase,
		PageSize:      DefaultPageSize,
		Timeout:       15 * time.Second,
		Retry: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 3 * time.Second,
			MaxDelay:     15 * time.Second,
			Multiplier:   1.7,
		},
	}
}

// Scraper fetches product pages and review payloads over HTTP.
type Scraper struct {
	client *http.Client
	cfg    Config
}

// New builds a scraper; a nil client gets a sane default.
func New(client *http.Client, cfg Config) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.ReviewAPIBase == "" {
		cfg.ReviewAPIBase = DefaultReviewAPIBase
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Scraper{client: client, cfg: cfg}
}

// get issues one browser-looking request and maps blocking responses to
// retryable errors.
func (s *Scraper) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", randomAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Cache-Control", "max-age=0")
	req.Header.Set("DNT", "1")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, common.ErrRateLimit)
	case resp.StatusCode == http.StatusForbidden:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, common.ErrScrapeBlocked)
	case resp.StatusCode != http.StatusOK:
		status := resp.Status
		_ = resp.Body.Close()
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%s returned %s", url, status),
			Retryable: resp.StatusCode >= http.StatusInternalServerError,
		}
	}

	return resp, nil
}
