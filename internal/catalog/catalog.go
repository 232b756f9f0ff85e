// Package catalog wires the filter, badge, payment guide, metadata and safe
// mode components into the card views a page renders.
package catalog

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"aihub/internal/badge"
	"aihub/internal/filter"
	"aihub/internal/model"
	"aihub/internal/payguide"
	"aihub/internal/safemode"
	"aihub/internal/seo"
)

// Card is everything the rendering layer needs for one service.
type Card struct {
	Service          model.Service
	Badges           []badge.Type
	VisibleBadges    []badge.Type
	Inactive         bool
	NSFWContent      bool
	Blurred          bool
	ShowPaymentGuide bool
	Metadata         seo.Product
}

// Catalog is a validated, immutable set of services.
type Catalog struct {
	services []model.Service
	bySlug   map[string]int
	gate     *safemode.Gate
	siteURL  string
	log      *slog.Logger
}

// New builds a catalog over services, which must already be validated.
// gate may be nil, which renders as if safe mode were off.
func New(services []model.Service, gate *safemode.Gate, siteURL string, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if gate == nil {
		gate = safemode.New(context.Background(), nil, log)
	}
	bySlug := make(map[string]int, len(services))
	for i, s := range services {
		bySlug[s.Slug] = i
	}
	return &Catalog{
		services: services,
		bySlug:   bySlug,
		gate:     gate,
		siteURL:  strings.TrimRight(siteURL, "/"),
		log:      log,
	}
}

// Services returns every service in catalog order.
func (c *Catalog) Services() []model.Service {
	return c.services
}

// SafeMode returns the gate cards are rendered through.
func (c *Catalog) SafeMode() *safemode.Gate {
	return c.gate
}

// Find returns the service with slug.
func (c *Catalog) Find(slug string) (model.Service, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return model.Service{}, false
	}
	return c.services[i], true
}

// PageURL is the canonical URL of a service page.
func (c *Catalog) PageURL(slug string) string {
	return c.siteURL + "/models/" + slug + "/"
}

// Cards filters the catalog with state and projects every match into a Card.
// Unknown filter tokens are logged and otherwise ignored.
func (c *Catalog) Cards(state model.FilterState) []Card {
	matched := filter.Apply(c.services, state, filter.WithUnknownHook(func(g filter.Group, token string) {
		c.log.Warn("ignoring unknown filter token", "group", g, "token", token)
	}))

	cards := make([]Card, 0, len(matched))
	for i := range matched {
		cards = append(cards, c.Card(&matched[i]))
	}
	return cards
}

// Card projects a single service.
func (c *Catalog) Card(svc *model.Service) Card {
	badges := badge.Derive(svc)
	vis := c.gate.Visibility(safemode.Element{NSFWContent: svc.Features.NSFW})
	return Card{
		Service:          *svc,
		Badges:           badges,
		VisibleBadges:    c.gate.Badges(badges),
		Inactive:         !svc.Status.Active(),
		NSFWContent:      svc.Features.NSFW,
		Blurred:          vis.ContentBlurred,
		ShowPaymentGuide: payguide.ShouldShow(svc.PaymentMethods),
		Metadata:         seo.Project(svc, c.PageURL(svc.Slug)),
	}
}
