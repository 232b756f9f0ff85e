package seo

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"aihub/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestProject(t *testing.T) {
	svc := &model.Service{
		Name:        "Candy AI",
		Description: "Companion chat",
		Rating:      4.26,
		Pricing:     model.PricingPaid,
		PriceFrom:   ptr(12.99),
		Logo:        "https://cdn.example/candy.png",
		ReviewCount: 128,
	}

	got := Project(svc, "https://example.com/models/candy-ai/")
	want := Product{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        "Candy AI",
		Description: "Companion chat",
		Image:       "https://cdn.example/candy.png",
		URL:         "https://example.com/models/candy-ai/",
		Brand:       Brand{Type: "Brand", Name: "Candy AI"},
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: "4.3",
			BestRating:  "5",
			WorstRating: "1",
			RatingCount: 128,
		},
		Offers: Offer{
			Type:          "Offer",
			Price:         "12.99",
			PriceCurrency: "USD",
			Availability:  "https://schema.org/InStock",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectFallbacks(t *testing.T) {
	svc := &model.Service{Name: "Bare", Tagline: "Only a tagline", Pricing: model.PricingFreemium, Rating: 3}
	got := Project(svc, "")

	if got.Image != DefaultLogo {
		t.Errorf("Image = %q, want %q", got.Image, DefaultLogo)
	}
	if got.AggregateRating.RatingCount != DefaultReviewCount {
		t.Errorf("RatingCount = %d, want %d", got.AggregateRating.RatingCount, DefaultReviewCount)
	}
	if got.Offers.Price != DefaultPrice {
		t.Errorf("Price = %q, want %q", got.Offers.Price, DefaultPrice)
	}
	if got.AggregateRating.RatingValue != "3.0" {
		t.Errorf("RatingValue = %q, want 3.0", got.AggregateRating.RatingValue)
	}
	if got.Description != "Only a tagline" {
		t.Errorf("Description = %q, want tagline fallback", got.Description)
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		svc  model.Service
		want string
	}{
		{name: "free ignores priceFrom", svc: model.Service{Pricing: model.PricingFree, PriceFrom: ptr(5)}, want: "0"},
		{name: "integer price", svc: model.Service{Pricing: model.PricingPaid, PriceFrom: ptr(10)}, want: "10"},
		{name: "decimal price", svc: model.Service{Pricing: model.PricingFreemium, PriceFrom: ptr(9.5)}, want: "9.5"},
		{name: "zero price falls back", svc: model.Service{Pricing: model.PricingPaid, PriceFrom: ptr(0)}, want: DefaultPrice},
		{name: "no price falls back", svc: model.Service{Pricing: model.PricingPaid}, want: DefaultPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Price(&tt.svc)); diff != "" {
				t.Errorf("Price() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONLDShape(t *testing.T) {
	svc := &model.Service{Name: "Free One", Pricing: model.PricingFree, Rating: 5}
	data, err := JSONLD(Project(svc, "https://example.com/x/"))
	if err != nil {
		t.Fatalf("JSONLD: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["@context"] != "https://schema.org" || doc["@type"] != "Product" || doc["name"] != "Free One" {
		t.Errorf("unexpected top level: %v", doc)
	}
	offers := doc["offers"].(map[string]any)
	if offers["price"] != "0" || offers["priceCurrency"] != "USD" || offers["availability"] != "https://schema.org/InStock" {
		t.Errorf("unexpected offers: %v", offers)
	}
	rating := doc["aggregateRating"].(map[string]any)
	if rating["ratingValue"] != "5.0" || rating["@type"] != "AggregateRating" {
		t.Errorf("unexpected aggregateRating: %v", rating)
	}
}

func TestProjectProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("rating value parses into [0,5]", prop.ForAll(
		func(r float64) bool {
			got := Project(&model.Service{Rating: r, Pricing: model.PricingPaid}, "")
			v, err := strconv.ParseFloat(got.AggregateRating.RatingValue, 64)
			return err == nil && v >= 0 && v <= 5
		},
		gen.Float64Range(0, 5),
	))

	properties.Property("free pricing always yields price 0", prop.ForAll(
		func(price float64) bool {
			got := Project(&model.Service{Pricing: model.PricingFree, PriceFrom: &price}, "")
			return got.Offers.Price == "0"
		},
		gen.Float64Range(0, 1000),
	))

	properties.TestingRun(t)
}
