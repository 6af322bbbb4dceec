// Package model defines the core domain models used throughout the application.
package model

import "time"

// RatingAbsent marks a review whose star rating could not be parsed or was
// never supplied. Classification falls back to the lexicon branch for it.
const RatingAbsent = 0

// Review is a single raw product review as delivered by the retrieval layer.
// It is immutable once ingested.
type Review struct {
	CollectedAt time.Time
	ID          string
	ProductID   string
	Text        string
	Rating      int // 1..5, or RatingAbsent
}

// HasRating reports whether the review carries a usable star rating.
func (r Review) HasRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

// Product is a scraped product listing entry, keyed by the SKU its review
// widget exposes.
type Product struct {
	CollectedAt time.Time
	ID          string
	SKU         string
	Title       string
	Category    string
	URL         string
}
