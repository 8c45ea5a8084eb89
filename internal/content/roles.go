package content

import "copydesk/internal/domain"

// systemRoles holds the system instruction sent with each content type.
var systemRoles = map[domain.ContentType]string{
	domain.ContentProductDescription: "You are an expert eCommerce copywriter who creates compelling product descriptions.",
	domain.ContentSEO:                "You are an SEO expert who creates optimized product titles and meta descriptions.",
	domain.ContentMarketingEmail:     "You are an email marketing specialist who creates compelling product-focused emails.",
	domain.ContentSocialMedia:        "You are a social media manager who creates engaging product posts.",
	domain.ContentMissingFields:      "You are a product data specialist who completes missing product information accurately.",
}

// Styles used by the completer for each generated field group.
var (
	completionDescriptionStyle = domain.StyleConfig{Tone: "professional", Length: domain.LengthMedium}
	completionSEOStyle         = domain.StyleConfig{Tone: "professional"}
	completionEmailStyle       = domain.StyleConfig{Tone: "enthusiastic", Length: domain.LengthMedium}
	completionSocialStyle      = domain.StyleConfig{Tone: "casual", Length: domain.LengthShort}
	completionPlatforms        = domain.PlatformConfig{Instagram: true, Facebook: true, Twitter: true}
)
