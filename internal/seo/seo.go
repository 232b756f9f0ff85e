// Package seo projects catalog services into Schema.org structured data.
package seo

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"aihub/internal/model"
)

// Fallbacks used when a service does not provide the value.
const (
	DefaultLogo        = "/images/default-logo.png"
	DefaultPrice       = "9.99"
	DefaultReviewCount = 10
)

// Product is a Schema.org Product with an aggregate rating and an offer.
// Field names follow the schema.org vocabulary and must keep this shape.
type Product struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	URL             string          `json:"url"`
	Brand           Brand           `json:"brand"`
	AggregateRating AggregateRating `json:"aggregateRating"`
	Offers          Offer           `json:"offers"`
}

// Brand names the product vendor.
type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// AggregateRating carries the catalog rating.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
	RatingCount int    `json:"ratingCount"`
}

// Offer carries the starting price.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
}

// Project maps svc to its Product metadata. pageURL is the canonical URL of
// the service page. It never fails.
func Project(svc *model.Service, pageURL string) Product {
	image := svc.Logo
	if image == "" {
		image = DefaultLogo
	}
	reviews := svc.ReviewCount
	if reviews <= 0 {
		reviews = DefaultReviewCount
	}
	description := svc.Description
	if description == "" {
		description = svc.Tagline
	}

	return Product{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        svc.Name,
		Description: description,
		Image:       image,
		URL:         pageURL,
		Brand: Brand{
			Type: "Brand",
			Name: svc.Name,
		},
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: FormatRating(svc.Rating),
			BestRating:  "5",
			WorstRating: "1",
			RatingCount: reviews,
		},
		Offers: Offer{
			Type:          "Offer",
			Price:         Price(svc),
			PriceCurrency: "USD",
			Availability:  "https://schema.org/InStock",
		},
	}
}

// Price is "0" for free services, the starting price when one is set, and
// DefaultPrice otherwise.
func Price(svc *model.Service) string {
	if svc.Pricing == model.PricingFree {
		return "0"
	}
	if svc.PriceFrom != nil && *svc.PriceFrom > 0 {
		return strconv.FormatFloat(*svc.PriceFrom, 'f', -1, 64)
	}
	return DefaultPrice
}

// FormatRating renders r with one decimal, clamped to [0,5].
func FormatRating(r float64) string {
	if math.IsNaN(r) || r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// JSONLD renders p as the payload of an application/ld+json script tag.
func JSONLD(p Product) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}
	return data, nil
}
