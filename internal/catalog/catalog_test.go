package catalog

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aihub/internal/badge"
	"aihub/internal/model"
	"aihub/internal/safemode"
)

type memStore map[string]string

func (m memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func testServices() []model.Service {
	return []model.Service{
		{
			Slug:           "mir-bot",
			Name:           "Mir Bot",
			Rating:         4.1,
			Pricing:        model.PricingPaid,
			Status:         model.StatusActive,
			PaymentMethods: []model.PaymentMethod{model.PaymentMir},
			Platforms:      []model.Platform{model.PlatformTelegram},
			Features:       model.Features{NSFW: true, Telegram: true},
		},
		{
			Slug:           "crypto-girl",
			Name:           "Crypto Girl",
			Rating:         3.7,
			Pricing:        model.PricingFree,
			Status:         model.StatusActive,
			PaymentMethods: []model.PaymentMethod{model.PaymentCrypto},
			Platforms:      []model.Platform{model.PlatformWeb},
		},
		{
			Slug:      "gone",
			Name:      "Gone",
			Pricing:   model.PricingPaid,
			Status:    model.StatusDead,
			Platforms: []model.Platform{model.PlatformWeb},
		},
	}
}

func cardSlugs(cards []Card) []string {
	var out []string
	for _, c := range cards {
		out = append(out, c.Service.Slug)
	}
	return out
}

func TestCards(t *testing.T) {
	c := New(testServices(), nil, "https://example.com/hub/", nil)

	cards := c.Cards(model.FilterState{})
	if diff := cmp.Diff([]string{"mir-bot", "crypto-girl"}, cardSlugs(cards)); diff != "" {
		t.Fatalf("Cards() mismatch (-want +got):\n%s", diff)
	}

	mir := cards[0]
	if diff := cmp.Diff([]badge.Type{badge.NSFW, badge.Mir, badge.Telegram}, mir.Badges); diff != "" {
		t.Errorf("mir badges mismatch (-want +got):\n%s", diff)
	}
	if mir.ShowPaymentGuide {
		t.Error("mir service must hide the payment guide")
	}
	if mir.Blurred {
		t.Error("content must not blur with safe mode off")
	}
	if got := mir.Metadata.URL; got != "https://example.com/hub/models/mir-bot/" {
		t.Errorf("Metadata.URL = %q", got)
	}

	crypto := cards[1]
	if diff := cmp.Diff([]badge.Type{badge.Free, badge.Crypto}, crypto.Badges); diff != "" {
		t.Errorf("crypto badges mismatch (-want +got):\n%s", diff)
	}
	if !crypto.ShowPaymentGuide {
		t.Error("crypto service must show the payment guide")
	}
	if crypto.Metadata.Offers.Price != "0" {
		t.Errorf("free service price = %q, want 0", crypto.Metadata.Offers.Price)
	}
}

func TestCardsShowDead(t *testing.T) {
	c := New(testServices(), nil, "", nil)
	cards := c.Cards(model.FilterState{ShowDead: true, Platform: []string{"web"}})
	if diff := cmp.Diff([]string{"crypto-girl", "gone"}, cardSlugs(cards)); diff != "" {
		t.Fatalf("Cards() mismatch (-want +got):\n%s", diff)
	}
	gone := cards[1]
	if !gone.Inactive {
		t.Error("dead service must be marked inactive")
	}
	if diff := cmp.Diff([]badge.Type{badge.Dead}, gone.Badges); diff != "" {
		t.Errorf("dead badges mismatch (-want +got):\n%s", diff)
	}
}

func TestCardsSafeMode(t *testing.T) {
	ctx := context.Background()
	store := memStore{safemode.StorageKey: "true"}
	gate := safemode.New(ctx, store, nil)
	c := New(testServices(), gate, "", nil)

	mir := c.Cards(model.FilterState{Meaning: []string{"nsfw"}})[0]
	if !mir.Blurred {
		t.Error("nsfw content must blur in safe mode")
	}
	if diff := cmp.Diff([]badge.Type{badge.Mir, badge.Telegram}, mir.VisibleBadges); diff != "" {
		t.Errorf("visible badges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]badge.Type{badge.NSFW, badge.Mir, badge.Telegram}, mir.Badges); diff != "" {
		t.Errorf("safe mode must not change derived badges (-want +got):\n%s", diff)
	}
	if !mir.Service.Features.NSFW {
		t.Error("safe mode must not mutate the service")
	}
}

func TestFind(t *testing.T) {
	c := New(testServices(), nil, "", nil)
	if s, ok := c.Find("gone"); !ok || s.Name != "Gone" {
		t.Errorf("Find(gone) = %v, %v", s, ok)
	}
	if _, ok := c.Find("nope"); ok {
		t.Error("Find(nope) found a service")
	}
}

func TestSafeModeGateStaysUsable(t *testing.T) {
	ctx := context.Background()
	store := memStore{}
	c := New(testServices(), safemode.New(ctx, store, nil), "", nil)

	if err := c.SafeMode().Toggle(ctx, true); err != nil {
		t.Fatalf("Toggle(): %v", err)
	}
	if !c.SafeMode().Saved(ctx) {
		t.Error("Saved() = false after Toggle(true)")
	}
	if !c.Card(&c.Services()[0]).Blurred {
		t.Error("toggled gate must blur nsfw content")
	}
}
