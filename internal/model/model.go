// Package model defines the domain types used across the application.
package model

import "time"

// Service is one validated catalog entry describing an AI companion product.
type Service struct {
	Slug        string
	Name        string
	Logo        string
	Rating      float64
	Pricing     Pricing
	PriceFrom   *float64
	Description string
	Tagline     string
	Content     string
	Screenshots []string
	UpdatedAt   *time.Time
	Pros        []string
	Cons        []string

	Motivation        Motivation
	MotivationSupport []Motivation
	Formats           []Format
	ExperienceTypes   []ExperienceType
	AdvancedFeatures  AdvancedFeatures
	ProductFit        ProductFit

	PaymentMethods []PaymentMethod
	VPNRequired    bool
	Platforms      []Platform
	Status         Status
	DeadReason     string
	DeadDate       *time.Time
	GIFPreview     string
	PaymentGuide   string

	Features     Features
	Tags         []string
	AffiliateURL string
	WebsiteURL   string
	SEO          SEO
	Featured     bool
	Order        int
	ReviewCount  int
}

// Features is the legacy flat capability set.
type Features struct {
	Voice    bool
	NSFW     bool
	Russian  bool
	ImageGen bool
	Roleplay bool
	Telegram bool
	API      bool
}

// AdvancedFeatures holds the richer comparison-table attributes.
type AdvancedFeatures struct {
	MemoryType               MemoryType
	PersonalityCustomization bool
	CustomAvatar             bool
	VoiceQuality             VoiceQuality
	Multimodal               bool
	ResponseSpeed            ResponseSpeed
	EroticQuality            EroticQuality
	StoryDepth               StoryDepth
	Censorship               Censorship
	NSFWSupport              NSFWSupport
	RoleTypes                []string
	HasMarketplace           bool
	HasGroupChats            bool
}

// ProductFit describes who a service suits.
type ProductFit struct {
	IdealFor     []string
	NotFor       []string
	Alternatives []Alternative
}

// Alternative points at another service in the catalog.
type Alternative struct {
	Slug   string
	Reason string
}

// SEO holds optional page metadata overrides.
type SEO struct {
	Title       string
	Description string
}

// HasPayment reports whether the service accepts the given payment method.
func (s *Service) HasPayment(m PaymentMethod) bool {
	for _, pm := range s.PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// HasPlatform reports whether the service is reachable on the given platform.
func (s *Service) HasPlatform(p Platform) bool {
	for _, sp := range s.Platforms {
		if sp == p {
			return true
		}
	}
	return false
}

// Comparison is a head-to-head review of two services.
type Comparison struct {
	Slug        string
	Title       string
	ModelA      string
	ModelB      string
	Verdict     string
	Winner      Winner
	SEO         SEO
	PublishedAt *time.Time
	Body        string
}

// FilterState is the set of user-selected inclusion criteria for one view.
type FilterState struct {
	Meaning  []string
	Features []string
	Platform []string
	Payment  []string
	ShowDead bool
}

// IsEmpty reports whether no token is selected in any group.
func (f FilterState) IsEmpty() bool {
	return len(f.Meaning) == 0 && len(f.Features) == 0 && len(f.Platform) == 0 && len(f.Payment) == 0
}
