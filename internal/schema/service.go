// Package schema validates authored catalog records and normalizes them into model types.
package schema

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"

	"aihub/internal/model"
)

const dateLayout = "2006-01-02"

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Closed value sets. Anything outside them is a validation failure.
var (
	pricings        = []model.Pricing{model.PricingFree, model.PricingFreemium, model.PricingPaid}
	paymentMethods  = []model.PaymentMethod{model.PaymentMir, model.PaymentSBP, model.PaymentCrypto, model.PaymentForeignCard}
	platforms       = []model.Platform{model.PlatformWeb, model.PlatformIOS, model.PlatformAndroid, model.PlatformTelegram}
	statuses        = []model.Status{model.StatusActive, model.StatusDead, model.StatusCensored}
	motivations     = []model.Motivation{model.MotivationIntimacy, model.MotivationEscapism, model.MotivationConnection}
	formats         = []model.Format{model.FormatText, model.FormatVoice, model.FormatVisual}
	memoryTypes     = []model.MemoryType{model.MemoryNone, model.MemoryShort, model.MemoryLong, model.MemoryPersistent}
	voiceQualities  = []model.VoiceQuality{model.VoiceNone, model.VoiceBasic, model.VoiceRealistic}
	responseSpeeds  = []model.ResponseSpeed{model.SpeedInstant, model.SpeedFast, model.SpeedSlow}
	eroticQualities = []model.EroticQuality{model.EroticNone, model.EroticBasic, model.EroticGood, model.EroticExcellent}
	storyDepths     = []model.StoryDepth{model.StoryShallow, model.StoryMedium, model.StoryDeep}
	censorships     = []model.Censorship{model.CensorshipStrict, model.CensorshipModerate, model.CensorshipNone}
	nsfwSupports    = []model.NSFWSupport{model.NSFWNone, model.NSFWSoft, model.NSFWFull}
	experienceTypes = []model.ExperienceType{
		model.ExperienceSlowBurn, model.ExperienceExplicit, model.ExperienceGFE, model.ExperienceFantasy,
		model.ExperienceEroticStory, model.ExperienceLiteRP, model.ExperienceStructuredRP, model.ExperienceKinkyRP,
		model.ExperienceHighImprov, model.ExperienceCharacterAccurate, model.ExperienceLongTermRP,
		model.ExperienceTherapyLite, model.ExperienceDailyCompanion, model.ExperienceMotivation,
		model.ExperienceLoneliness,
	}
)

type rawService struct {
	Slug        string   `yaml:"slug"`
	Name        *string  `yaml:"name"`
	Logo        string   `yaml:"logo"`
	Rating      *float64 `yaml:"rating"`
	Pricing     *string  `yaml:"pricing"`
	PriceFrom   *float64 `yaml:"priceFrom"`
	Description *string  `yaml:"description"`
	Tagline     string   `yaml:"tagline"`
	Content     string   `yaml:"content"`
	Screenshots []string `yaml:"screenshots"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Pros        []string `yaml:"pros"`
	Cons        []string `yaml:"cons"`

	Motivation        *string       `yaml:"motivation"`
	MotivationSupport []string      `yaml:"motivationSupport"`
	Formats           []string      `yaml:"formats"`
	ExperienceTypes   []string      `yaml:"experienceTypes"`
	AdvancedFeatures  rawAdvanced   `yaml:"advancedFeatures"`
	ProductFit        rawProductFit `yaml:"productFit"`
	PaymentMethods    []string      `yaml:"payment_methods"`
	VPNRequired       *bool         `yaml:"vpn_required"`
	Platforms         []string      `yaml:"platforms"`
	Status            *string       `yaml:"status"`
	DeadReason        string        `yaml:"dead_reason"`
	DeadDate          string        `yaml:"dead_date"`
	GIFPreview        string        `yaml:"gif_preview"`
	PaymentGuide      string        `yaml:"payment_guide"`
	Features          rawFeatures   `yaml:"features"`
	Tags              []string      `yaml:"tags"`
	AffiliateURL      *string       `yaml:"affiliateUrl"`
	WebsiteURL        *string       `yaml:"websiteUrl"`
	SEO               rawSEO        `yaml:"seo"`
	Featured          bool          `yaml:"featured"`
	Order             int           `yaml:"order"`
	ReviewCount       *int          `yaml:"reviewCount"`
}

type rawAdvanced struct {
	MemoryType               *string  `yaml:"memoryType"`
	PersonalityCustomization bool     `yaml:"personalityCustomization"`
	CustomAvatar             bool     `yaml:"customAvatar"`
	VoiceQuality             *string  `yaml:"voiceQuality"`
	Multimodal               bool     `yaml:"multimodal"`
	ResponseSpeed            *string  `yaml:"responseSpeed"`
	EroticQuality            *string  `yaml:"eroticQuality"`
	StoryDepth               *string  `yaml:"storyDepth"`
	Censorship               *string  `yaml:"censorship"`
	NSFWSupport              *string  `yaml:"nsfwSupport"`
	RoleTypes                []string `yaml:"roleTypes"`
	HasMarketplace           bool     `yaml:"hasMarketplace"`
	HasGroupChats            bool     `yaml:"hasGroupChats"`
}

type rawProductFit struct {
	IdealFor     []string         `yaml:"idealFor"`
	NotFor       []string         `yaml:"notFor"`
	Alternatives []rawAlternative `yaml:"alternatives"`
}

type rawAlternative struct {
	Slug   *string `yaml:"slug"`
	Reason *string `yaml:"reason"`
}

type rawFeatures struct {
	Voice    bool `yaml:"voice"`
	NSFW     bool `yaml:"nsfw"`
	Russian  bool `yaml:"russian"`
	ImageGen bool `yaml:"imageGen"`
	Roleplay bool `yaml:"roleplay"`
	Telegram bool `yaml:"telegram"`
	API      bool `yaml:"api"`
}

type rawSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DecodeService parses one authored service record (YAML or JSON) and validates it.
// defaultSlug is used when the record does not name its own slug, normally the file name.
// The returned error is a *ValidationError listing every violated constraint.
func DecodeService(data []byte, defaultSlug string) (model.Service, error) {
	var raw rawService
	d, err := decode(data, &raw)
	if err != nil {
		return model.Service{}, err
	}
	if raw.Slug == "" {
		raw.Slug = defaultSlug
	}
	svc, err := normalizeService(&raw)
	if err := d.finish(err); err != nil {
		return model.Service{}, err
	}
	return svc, nil
}

func normalizeService(raw *rawService) (model.Service, error) {
	var p problems

	svc := model.Service{
		Slug:         raw.Slug,
		Logo:         strings.TrimSpace(raw.Logo),
		Tagline:      strings.TrimSpace(raw.Tagline),
		Content:      raw.Content,
		Screenshots:  raw.Screenshots,
		Pros:         raw.Pros,
		Cons:         raw.Cons,
		DeadReason:   strings.TrimSpace(raw.DeadReason),
		GIFPreview:   strings.TrimSpace(raw.GIFPreview),
		PaymentGuide: raw.PaymentGuide,
		Features:     model.Features(raw.Features),
		Tags:         raw.Tags,
		SEO:          model.SEO(raw.SEO),
		Featured:     raw.Featured,
		Order:        raw.Order,
		VPNRequired:  true,
	}

	if !slugPattern.MatchString(svc.Slug) {
		p.add("slug", "must match [a-z0-9-]+ (got %q)", svc.Slug)
	}

	svc.Name = requiredString(&p, "name", raw.Name)
	svc.Description = requiredString(&p, "description", raw.Description)

	switch {
	case raw.Rating == nil:
		p.add("rating", "is required")
	case math.IsNaN(*raw.Rating) || *raw.Rating < 0 || *raw.Rating > 5:
		p.add("rating", "must be between 0 and 5 (got %v)", *raw.Rating)
	default:
		svc.Rating = *raw.Rating
	}

	if raw.Pricing == nil {
		p.add("pricing", "is required")
	} else {
		svc.Pricing, _ = enumValue(&p, "pricing", *raw.Pricing, pricings)
	}

	if raw.PriceFrom != nil {
		if math.IsNaN(*raw.PriceFrom) || *raw.PriceFrom < 0 {
			p.add("priceFrom", "must be a non-negative number (got %v)", *raw.PriceFrom)
		} else {
			v := *raw.PriceFrom
			svc.PriceFrom = &v
		}
	}

	svc.UpdatedAt = optionalDate(&p, "updatedAt", raw.UpdatedAt)
	svc.DeadDate = optionalDate(&p, "dead_date", raw.DeadDate)

	svc.Motivation = model.MotivationConnection
	if raw.Motivation != nil {
		svc.Motivation, _ = enumValue(&p, "motivation", *raw.Motivation, motivations)
	}
	svc.MotivationSupport = enumSet(&p, "motivationSupport", raw.MotivationSupport, motivations)

	if raw.Formats == nil {
		svc.Formats = []model.Format{model.FormatText}
	} else {
		svc.Formats = enumSet(&p, "formats", raw.Formats, formats)
	}
	svc.ExperienceTypes = enumSet(&p, "experienceTypes", raw.ExperienceTypes, experienceTypes)
	svc.AdvancedFeatures = normalizeAdvanced(&p, raw.AdvancedFeatures)
	svc.ProductFit = normalizeProductFit(&p, raw.ProductFit)

	svc.PaymentMethods = enumSet(&p, "payment_methods", raw.PaymentMethods, paymentMethods)
	if raw.VPNRequired != nil {
		svc.VPNRequired = *raw.VPNRequired
	}
	if raw.Platforms == nil {
		svc.Platforms = []model.Platform{model.PlatformWeb}
	} else {
		if len(raw.Platforms) == 0 {
			p.add("platforms", "must list at least one platform")
		}
		svc.Platforms = enumSet(&p, "platforms", raw.Platforms, platforms)
	}

	svc.Status = model.StatusActive
	if raw.Status != nil {
		svc.Status, _ = enumValue(&p, "status", *raw.Status, statuses)
	}

	if raw.AffiliateURL == nil {
		p.add("affiliateUrl", "is required")
	} else {
		svc.AffiliateURL = urlValue(&p, "affiliateUrl", *raw.AffiliateURL)
	}
	if raw.WebsiteURL != nil {
		svc.WebsiteURL = urlValue(&p, "websiteUrl", *raw.WebsiteURL)
	}

	if raw.ReviewCount != nil {
		if *raw.ReviewCount < 1 {
			p.add("reviewCount", "must be positive (got %d)", *raw.ReviewCount)
		} else {
			svc.ReviewCount = *raw.ReviewCount
		}
	}

	if err := p.err(); err != nil {
		return model.Service{}, err
	}
	return svc, nil
}

func normalizeAdvanced(p *problems, raw rawAdvanced) model.AdvancedFeatures {
	af := model.AdvancedFeatures{
		MemoryType:               model.MemoryShort,
		PersonalityCustomization: raw.PersonalityCustomization,
		CustomAvatar:             raw.CustomAvatar,
		VoiceQuality:             model.VoiceNone,
		Multimodal:               raw.Multimodal,
		ResponseSpeed:            model.SpeedFast,
		EroticQuality:            model.EroticNone,
		StoryDepth:               model.StoryMedium,
		Censorship:               model.CensorshipModerate,
		NSFWSupport:              model.NSFWNone,
		RoleTypes:                raw.RoleTypes,
		HasMarketplace:           raw.HasMarketplace,
		HasGroupChats:            raw.HasGroupChats,
	}
	if raw.MemoryType != nil {
		af.MemoryType, _ = enumValue(p, "advancedFeatures.memoryType", *raw.MemoryType, memoryTypes)
	}
	if raw.VoiceQuality != nil {
		af.VoiceQuality, _ = enumValue(p, "advancedFeatures.voiceQuality", *raw.VoiceQuality, voiceQualities)
	}
	if raw.ResponseSpeed != nil {
		af.ResponseSpeed, _ = enumValue(p, "advancedFeatures.responseSpeed", *raw.ResponseSpeed, responseSpeeds)
	}
	if raw.EroticQuality != nil {
		af.EroticQuality, _ = enumValue(p, "advancedFeatures.eroticQuality", *raw.EroticQuality, eroticQualities)
	}
	if raw.StoryDepth != nil {
		af.StoryDepth, _ = enumValue(p, "advancedFeatures.storyDepth", *raw.StoryDepth, storyDepths)
	}
	if raw.Censorship != nil {
		af.Censorship, _ = enumValue(p, "advancedFeatures.censorship", *raw.Censorship, censorships)
	}
	if raw.NSFWSupport != nil {
		af.NSFWSupport, _ = enumValue(p, "advancedFeatures.nsfwSupport", *raw.NSFWSupport, nsfwSupports)
	}
	return af
}

func normalizeProductFit(p *problems, raw rawProductFit) model.ProductFit {
	pf := model.ProductFit{IdealFor: raw.IdealFor, NotFor: raw.NotFor}
	for i, alt := range raw.Alternatives {
		path := fmt.Sprintf("productFit.alternatives[%d]", i)
		slug := requiredString(p, path+".slug", alt.Slug)
		reason := requiredString(p, path+".reason", alt.Reason)
		pf.Alternatives = append(pf.Alternatives, model.Alternative{Slug: slug, Reason: reason})
	}
	return pf
}

func requiredString(p *problems, path string, v *string) string {
	if v == nil {
		p.add(path, "is required")
		return ""
	}
	return strings.TrimSpace(*v)
}

func enumValue[T ~string](p *problems, path, v string, allowed []T) (T, bool) {
	for _, a := range allowed {
		if string(a) == v {
			return a, true
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	p.add(path, "must be one of %s (got %q)", strings.Join(names, ", "), v)
	var zero T
	return zero, false
}

func enumSet[T ~string](p *problems, path string, values []string, allowed []T) []T {
	if values == nil {
		return nil
	}
	out := make([]T, 0, len(values))
	seen := make(map[string]bool, len(values))
	for i, v := range values {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		if seen[v] {
			p.add(elemPath, "duplicate value %q", v)
			continue
		}
		seen[v] = true
		if t, ok := enumValue(p, elemPath, v, allowed); ok {
			out = append(out, t)
		}
	}
	return out
}

func urlValue(p *problems, path, v string) string {
	v = strings.TrimSpace(v)
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		p.add(path, "must be an absolute URL (got %q)", v)
		return ""
	}
	return v
}

func optionalDate(p *problems, path, v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	p.add(path, "must be a YYYY-MM-DD date or an RFC 3339 timestamp (got %q)", v)
	return nil
}
