// Package filter implements the catalog filter engine.
package filter

import "aihub/internal/model"

// Group names a filter group of the catalog UI.
type Group string

// Supported filter groups.
const (
	GroupMeaning  Group = "meaning"
	GroupFeatures Group = "features"
	GroupPlatform Group = "platform"
	GroupPayment  Group = "payment"
)

// UnknownToken is a selected token no rule recognises.
type UnknownToken struct {
	Group Group
	Token string
}

type predicate func(svc *model.Service) bool

// Each token has its own predicate. Tokens in one group are ANDed together.
var (
	paymentRules = map[string]predicate{
		"free":   isFree,
		"mir":    acceptsRussianCard,
		"crypto": acceptsCrypto,
	}
	meaningRules = map[string]predicate{
		"nsfw":     allowsNSFW,
		"roleplay": supportsRoleplay,
	}
	featureRules = map[string]predicate{
		"memory":  hasPersistentMemory,
		"voice":   hasVoice,
		"russian": speaksRussian,
		"no-vpn":  worksWithoutVPN,
	}
)

// isFree requires free pricing.
func isFree(svc *model.Service) bool {
	return svc.Pricing == model.PricingFree
}

// acceptsRussianCard treats both mir and sbp as the "Russian card" rail.
func acceptsRussianCard(svc *model.Service) bool {
	return svc.HasPayment(model.PaymentMir) || svc.HasPayment(model.PaymentSBP)
}

// acceptsCrypto requires crypto to be listed. Nothing else substitutes for it.
func acceptsCrypto(svc *model.Service) bool {
	return svc.HasPayment(model.PaymentCrypto)
}

func allowsNSFW(svc *model.Service) bool {
	return svc.Features.NSFW
}

func supportsRoleplay(svc *model.Service) bool {
	return svc.Features.Roleplay
}

func hasPersistentMemory(svc *model.Service) bool {
	return svc.AdvancedFeatures.MemoryType == model.MemoryPersistent
}

func hasVoice(svc *model.Service) bool {
	return svc.Features.Voice
}

func speaksRussian(svc *model.Service) bool {
	return svc.Features.Russian
}

func worksWithoutVPN(svc *model.Service) bool {
	return !svc.VPNRequired
}

func knownPlatform(token string) bool {
	switch model.Platform(token) {
	case model.PlatformWeb, model.PlatformIOS, model.PlatformAndroid, model.PlatformTelegram:
		return true
	}
	return false
}

type options struct {
	onUnknown func(group Group, token string)
}

// Option configures matching.
type Option func(*options)

// WithUnknownHook registers fn to receive every selected token that no rule
// recognises. Such tokens never constrain the result.
func WithUnknownHook(fn func(group Group, token string)) Option {
	return func(o *options) {
		o.onUnknown = fn
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply returns the services that satisfy every active predicate of state,
// preserving input order. Unknown tokens are reported once per call.
func Apply(services []model.Service, state model.FilterState, opts ...Option) []model.Service {
	o := buildOptions(opts)
	if o.onUnknown != nil {
		for _, u := range Unknown(state) {
			o.onUnknown(u.Group, u.Token)
		}
	}

	out := make([]model.Service, 0, len(services))
	for i := range services {
		if matches(&services[i], state) {
			out = append(out, services[i])
		}
	}
	return out
}

// Match checks whether a single service passes state.
// With no tokens selected every active service passes; inactive services
// pass only when state.ShowDead is set. A platform token outside the known
// platforms is ignored like any other unknown token, so it does not exclude
// services that lack it.
func Match(svc *model.Service, state model.FilterState, opts ...Option) bool {
	o := buildOptions(opts)
	if o.onUnknown != nil {
		for _, u := range Unknown(state) {
			o.onUnknown(u.Group, u.Token)
		}
	}
	return matches(svc, state)
}

func matches(svc *model.Service, state model.FilterState) bool {
	if !state.ShowDead && !svc.Status.Active() {
		return false
	}

	for _, token := range state.Platform {
		if knownPlatform(token) && !svc.HasPlatform(model.Platform(token)) {
			return false
		}
	}

	return allHold(svc, state.Payment, paymentRules) &&
		allHold(svc, state.Meaning, meaningRules) &&
		allHold(svc, state.Features, featureRules)
}

func allHold(svc *model.Service, tokens []string, rules map[string]predicate) bool {
	for _, token := range tokens {
		rule, ok := rules[token]
		if !ok {
			continue
		}
		if !rule(svc) {
			return false
		}
	}
	return true
}

// Unknown lists the selected tokens that no rule recognises, group by group
// in selection order. A strict caller can reject a state with any.
func Unknown(state model.FilterState) []UnknownToken {
	var out []UnknownToken
	for _, token := range state.Platform {
		if !knownPlatform(token) {
			out = append(out, UnknownToken{Group: GroupPlatform, Token: token})
		}
	}
	collect := func(group Group, tokens []string, rules map[string]predicate) {
		for _, token := range tokens {
			if _, ok := rules[token]; !ok {
				out = append(out, UnknownToken{Group: group, Token: token})
			}
		}
	}
	collect(GroupPayment, state.Payment, paymentRules)
	collect(GroupMeaning, state.Meaning, meaningRules)
	collect(GroupFeatures, state.Features, featureRules)
	return out
}
