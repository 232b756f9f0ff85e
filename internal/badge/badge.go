// Package badge derives the display badges of a catalog service.
package badge

import "aihub/internal/model"

// Type identifies a badge.
type Type string

// Supported badges, in display order.
const (
	Free     Type = "free"
	NSFW     Type = "nsfw"
	Memory   Type = "memory"
	Mir      Type = "mir"
	SBP      Type = "sbp"
	Crypto   Type = "crypto"
	Russian  Type = "russian"
	Voice    Type = "voice"
	Telegram Type = "telegram"
	Dead     Type = "dead"
	Censored Type = "censored"
)

// Info is how a badge is presented.
type Info struct {
	Label          string
	Icon           string
	HideInSafeMode bool
}

var infos = map[Type]Info{
	Free:     {Label: "Free"},
	NSFW:     {Label: "18+", HideInSafeMode: true},
	Memory:   {Label: "Память"},
	Mir:      {Label: "Мир", Icon: "💳"},
	SBP:      {Label: "СБП", Icon: "📱"},
	Crypto:   {Label: "Крипто", Icon: "₿"},
	Russian:  {Label: "RU"},
	Voice:    {Label: "Голос", Icon: "🎤"},
	Telegram: {Label: "TG", Icon: "✈️"},
	Dead:     {Label: "Закрыт"},
	Censored: {Label: "Цензура"},
}

// Lookup returns presentation info for t. Unknown types get their name as label.
func Lookup(t Type) Info {
	if info, ok := infos[t]; ok {
		return info
	}
	return Info{Label: string(t)}
}

// Derive returns the badges describing svc in display order.
// Each badge appears at most once.
func Derive(svc *model.Service) []Type {
	var badges []Type
	add := func(ok bool, t Type) {
		if ok {
			badges = append(badges, t)
		}
	}

	add(svc.Pricing == model.PricingFree, Free)
	add(svc.Features.NSFW, NSFW)
	add(svc.AdvancedFeatures.MemoryType == model.MemoryPersistent, Memory)
	add(svc.HasPayment(model.PaymentMir), Mir)
	add(svc.HasPayment(model.PaymentSBP), SBP)
	add(svc.HasPayment(model.PaymentCrypto), Crypto)
	add(svc.Features.Russian, Russian)
	add(svc.Features.Voice, Voice)
	add(svc.Features.Telegram, Telegram)
	add(svc.Status == model.StatusDead, Dead)
	add(svc.Status == model.StatusCensored, Censored)

	return badges
}

// Visible drops badges that are hidden while safe mode is on.
// With safe mode off the input is returned unchanged.
func Visible(badges []Type, safeMode bool) []Type {
	if !safeMode {
		return badges
	}
	out := make([]Type, 0, len(badges))
	for _, b := range badges {
		if !Lookup(b).HideInSafeMode {
			out = append(out, b)
		}
	}
	return out
}
