package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenha-br/resenha/internal/common"
	"github.com/resenha-br/resenha/internal/model"
	"github.com/resenha-br/resenha/internal/service"
)

func testConfig(base string) Config {
	cfg := DefaultConfig()
	cfg.ReviewAPIBase = base
	cfg.PageSize = 2
	cfg.Retry = service.RetryOptions{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	}
	return cfg
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips line breaks", "linha um\r\nlinha dois", "linha um linha dois"},
		{"removes pipe delimiter", "bom | barato", "bom barato"},
		{"collapses whitespace", "  muito \t bom  ", "muito bom"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, 5, parseRating(json.Number("5")))
	assert.Equal(t, 4, parseRating(json.Number("4.0")))
	assert.Equal(t, model.RatingAbsent, parseRating(json.Number("")))
	assert.Equal(t, model.RatingAbsent, parseRating(json.Number("abc")))
	assert.Equal(t, model.RatingAbsent, parseRating(json.Number("0")))
	assert.Equal(t, model.RatingAbsent, parseRating(json.Number("9")))
}

func TestScrapeProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`
			<html><body>
			<h1>Panela de Pressão 4,5L</h1>
			<div class="konfidency-reviews-summary" data-sku="sku-123"></div>
			</body></html>`))
	}))
	defer server.Close()

	s := New(server.Client(), testConfig(server.URL))

	product, err := s.ScrapeProduct(context.Background(), server.URL+"/produto/panela")
	require.NoError(t, err)
	assert.Equal(t, "sku-123", product.SKU)
	assert.Equal(t, "Panela de Pressão 4,5L", product.Title)
	assert.False(t, product.CollectedAt.IsZero())
}

func TestScrapeProductMissingWidget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>Sem avaliações</h1></body></html>`))
	}))
	defer server.Close()

	s := New(server.Client(), testConfig(server.URL))

	_, err := s.ScrapeProduct(context.Background(), server.URL)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestScrapeProductsSkipsFailures(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<div class="konfidency-reviews-summary" data-sku="ok-1"></div>`))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer bad.Close()

	s := New(nil, testConfig(good.URL))

	products, err := s.ScrapeProducts(context.Background(), []string{bad.URL, good.URL})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "ok-1", products[0].SKU)
}

func TestFetchReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/sku-9/summary/")

		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		if page == "1" {
			// Full page: pagination continues. One duplicated ID and one
			// review with a broken rating and messy text.
			fmt.Fprint(w, `{"reviews":[{"_id":"prod-1","reviewCount":3,"reviews":[
				{"_id":"r1","rating":5,"text":"Ótimo!\r\nChegou | rápido"},
				{"_id":"r1","rating":5,"text":"duplicado"}
			]}]}`)
			return
		}
		fmt.Fprint(w, `{"reviews":[{"_id":"prod-1","reviewCount":3,"reviews":[
			{"_id":"r2","rating":"7","text":"sem nota"}
		]}]}`)
	}))
	defer server.Close()

	s := New(server.Client(), testConfig(server.URL))

	reviews, err := s.FetchReviews(context.Background(), "sku-9")
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "r1", reviews[0].ID)
	assert.Equal(t, "prod-1", reviews[0].ProductID)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Ótimo! Chegou rápido", reviews[0].Text)

	assert.Equal(t, "r2", reviews[1].ID)
	assert.Equal(t, model.RatingAbsent, reviews[1].Rating)
}

func TestFetchReviewsEmptySKU(t *testing.T) {
	s := New(nil, DefaultConfig())
	_, err := s.FetchReviews(context.Background(), "")
	assert.Error(t, err)
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"reviews":[]}`)
	}))
	defer server.Close()

	s := New(server.Client(), testConfig(server.URL))

	reviews, err := s.FetchReviews(context.Background(), "sku-1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Equal(t, 2, calls)
}
