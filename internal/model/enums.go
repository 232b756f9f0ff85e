package model

// Pricing is the commercial model of a service.
type Pricing string

// Supported pricing models.
const (
	PricingFree     Pricing = "free"
	PricingFreemium Pricing = "freemium"
	PricingPaid     Pricing = "paid"
)

// PaymentMethod is a way to pay for a service from Russia.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentMir         PaymentMethod = "mir"
	PaymentSBP         PaymentMethod = "sbp"
	PaymentCrypto      PaymentMethod = "crypto"
	PaymentForeignCard PaymentMethod = "foreign_card"
)

// Domestic reports whether the method works without cross-border card support.
func (m PaymentMethod) Domestic() bool {
	return m == PaymentMir || m == PaymentSBP
}

// Platform is a surface a service can be used from.
type Platform string

// Supported platforms.
const (
	PlatformWeb      Platform = "web"
	PlatformIOS      Platform = "ios"
	PlatformAndroid  Platform = "android"
	PlatformTelegram Platform = "telegram"
)

// Status is the lifecycle state of a service.
type Status string

// Supported statuses.
const (
	StatusActive   Status = "active"
	StatusDead     Status = "dead"
	StatusCensored Status = "censored"
)

// Active reports whether the service is still operating normally.
func (s Status) Active() bool {
	return s == StatusActive
}

// Motivation is the primary user need a service addresses.
type Motivation string

// Supported motivations.
const (
	MotivationIntimacy   Motivation = "intimacy"
	MotivationEscapism   Motivation = "escapism"
	MotivationConnection Motivation = "connection"
)

// Format is a way of interacting with the companion.
type Format string

// Supported formats.
const (
	FormatText   Format = "text"
	FormatVoice  Format = "voice"
	FormatVisual Format = "visual"
)

// ExperienceType describes the interaction style a service delivers.
type ExperienceType string

// Supported experience types.
const (
	ExperienceSlowBurn          ExperienceType = "slow-burn"
	ExperienceExplicit          ExperienceType = "explicit"
	ExperienceGFE               ExperienceType = "gfe"
	ExperienceFantasy           ExperienceType = "fantasy"
	ExperienceEroticStory       ExperienceType = "erotic-story"
	ExperienceLiteRP            ExperienceType = "lite-rp"
	ExperienceStructuredRP      ExperienceType = "structured-rp"
	ExperienceKinkyRP           ExperienceType = "kinky-rp"
	ExperienceHighImprov        ExperienceType = "high-improv"
	ExperienceCharacterAccurate ExperienceType = "character-accurate"
	ExperienceLongTermRP        ExperienceType = "long-term-rp"
	ExperienceTherapyLite       ExperienceType = "therapy-lite"
	ExperienceDailyCompanion    ExperienceType = "daily-companion"
	ExperienceMotivation        ExperienceType = "motivation"
	ExperienceLoneliness        ExperienceType = "loneliness"
)

// MemoryType is how long a companion remembers the conversation.
type MemoryType string

// Supported memory types.
const (
	MemoryNone       MemoryType = "none"
	MemoryShort      MemoryType = "short"
	MemoryLong       MemoryType = "long"
	MemoryPersistent MemoryType = "persistent"
)

// VoiceQuality grades voice output.
type VoiceQuality string

// Supported voice qualities.
const (
	VoiceNone      VoiceQuality = "none"
	VoiceBasic     VoiceQuality = "basic"
	VoiceRealistic VoiceQuality = "realistic"
)

// ResponseSpeed grades reply latency.
type ResponseSpeed string

// Supported response speeds.
const (
	SpeedInstant ResponseSpeed = "instant"
	SpeedFast    ResponseSpeed = "fast"
	SpeedSlow    ResponseSpeed = "slow"
)

// EroticQuality grades adult content.
type EroticQuality string

// Supported erotic quality grades.
const (
	EroticNone      EroticQuality = "none"
	EroticBasic     EroticQuality = "basic"
	EroticGood      EroticQuality = "good"
	EroticExcellent EroticQuality = "excellent"
)

// StoryDepth grades narrative depth.
type StoryDepth string

// Supported story depths.
const (
	StoryShallow StoryDepth = "shallow"
	StoryMedium  StoryDepth = "medium"
	StoryDeep    StoryDepth = "deep"
)

// Censorship is how strictly content is moderated.
type Censorship string

// Supported censorship levels.
const (
	CensorshipStrict   Censorship = "strict"
	CensorshipModerate Censorship = "moderate"
	CensorshipNone     Censorship = "none"
)

// NSFWSupport is the level of adult content allowed.
type NSFWSupport string

// Supported NSFW levels.
const (
	NSFWNone NSFWSupport = "none"
	NSFWSoft NSFWSupport = "soft"
	NSFWFull NSFWSupport = "full"
)

// Winner is the outcome of a comparison.
type Winner string

// Supported comparison outcomes. WinnerUnset means no verdict winner was authored.
const (
	WinnerUnset Winner = ""
	WinnerA     Winner = "a"
	WinnerB     Winner = "b"
	WinnerTie   Winner = "tie"
)
