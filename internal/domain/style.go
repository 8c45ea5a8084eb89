package domain

const (
	DefaultTone     = "professional"
	DefaultLength   = LengthMedium
	DefaultAudience = "general"
)

// Length presets understood by the prompt builders. Anything else is passed
// through verbatim and treated as medium when choosing a word range.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// StyleConfig carries the requested voice for generated copy.
type StyleConfig struct {
	Tone     string   `json:"tone"`
	Length   string   `json:"length"`
	Audience string   `json:"audience"`
	Keywords []string `json:"keywords"`
}

// DefaultStyle mirrors the request defaults of the public API.
func DefaultStyle() StyleConfig {
	return StyleConfig{Tone: DefaultTone, Length: DefaultLength, Audience: DefaultAudience}
}

// WithDefaults fills blank fields. Unknown tone or length values are kept.
func (s StyleConfig) WithDefaults() StyleConfig {
	if s.Tone == "" {
		s.Tone = DefaultTone
	}
	if s.Length == "" {
		s.Length = DefaultLength
	}
	if s.Audience == "" {
		s.Audience = DefaultAudience
	}
	return s
}

// Social platform keys, also used as keys of the generated social bundle.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
)

// Platforms lists every supported platform in mapping order.
var Platforms = []string{PlatformInstagram, PlatformFacebook, PlatformTwitter, PlatformLinkedIn}

// PlatformConfig flags the platforms a social request targets.
type PlatformConfig struct {
	Instagram bool `json:"instagram"`
	Facebook  bool `json:"facebook"`
	Twitter   bool `json:"twitter"`
	LinkedIn  bool `json:"linkedin"`
}

// DefaultPlatforms enables every platform except LinkedIn.
func DefaultPlatforms() PlatformConfig {
	return PlatformConfig{Instagram: true, Facebook: true, Twitter: true}
}

// Enabled reports the flag for a platform key.
func (c PlatformConfig) Enabled(platform string) bool {
	switch platform {
	case PlatformInstagram:
		return c.Instagram
	case PlatformFacebook:
		return c.Facebook
	case PlatformTwitter:
		return c.Twitter
	case PlatformLinkedIn:
		return c.LinkedIn
	default:
		return false
	}
}

// Requested returns enabled platforms in mapping order.
func (c PlatformConfig) Requested() []string {
	var out []string
	for _, p := range Platforms {
		if c.Enabled(p) {
			out = append(out, p)
		}
	}
	return out
}

// ImageStyle controls the product photo prompt.
type ImageStyle struct {
	Style       string `json:"style"`
	Background  string `json:"background"`
	Lighting    string `json:"lighting"`
	Perspective string `json:"perspective"`
}

// WithDefaults fills blank image style fields.
func (s ImageStyle) WithDefaults() ImageStyle {
	if s.Style == "" {
		s.Style = "clean"
	}
	if s.Background == "" {
		s.Background = "white"
	}
	if s.Lighting == "" {
		s.Lighting = "front lighting"
	}
	if s.Perspective == "" {
		s.Perspective = "front angle"
	}
	return s
}
