package prompts

import (
	"fmt"
	"strings"

	"copydesk/internal/domain"
)

var platformBlocks = map[string]string{
	domain.PlatformInstagram: `
INSTAGRAM:
- Create an eye-catching caption that works with a product image
- Include 2-3 relevant emojis spaced throughout the text
- Keep the main message under 125 words
- End with a clear call-to-action
- Include 3-5 relevant hashtags at the end (format with # symbol)
- Tone should be visual, aspirational, and lifestyle-focused
`,
	domain.PlatformFacebook: `
FACEBOOK:
- Write a more detailed post (75-100 words)
- Include one question to encourage engagement
- Create a clear value proposition
- End with a specific call-to-action
- Tone should be conversational and informative
- No hashtags needed
`,
	domain.PlatformTwitter: `
TWITTER:
- Create a concise, attention-grabbing tweet (max 280 characters)
- Make it shareable and engaging
- Include 1-2 relevant hashtags integrated into the text
- Include a call-to-action when possible
- Make it conversational, clever or timely when appropriate
`,
	domain.PlatformLinkedIn: `
LINKEDIN:
- Create a professional post focused on product benefits (100-150 words)
- Highlight business value, efficiency, or professional benefits
- Use a more formal, business-appropriate tone
- Include one industry insight or trend connection if relevant
- End with a professional call-to-action
- No hashtags needed
`,
}

// BuildSocial creates one prompt asking for a post per requested platform.
func BuildSocial(p domain.Product, style domain.StyleConfig, platforms domain.PlatformConfig) string {
	sb := &strings.Builder{}
	sb.WriteString("I need engaging social media posts to promote the following product:\n\n")
	writeFacts(sb, p, factLabels{
		Name:        "Product Name",
		Brand:       "Brand",
		Price:       "Price",
		Category:    "Category",
		Features:    "Key Selling Points",
		Colors:      "Colors",
		Basic:       "Basic Description",
		Tags:        "Relevant hashtag keywords",
		MaxFeatures: maxSocialFeatures,
		Bulleted:    true,
		Bullet:      "-",
		HashtagTags: true,
	})

	fmt.Fprintf(sb, "\nTarget Audience: %s\n", coalesce(style.Audience, defaultAudience))

	sb.WriteString("\nI need content for the following platforms:\n")
	for _, platform := range platforms.Requested() {
		sb.WriteString(platformBlocks[platform])
	}

	fmt.Fprintf(sb, "\nOverall tone should be: %s\n", coalesce(style.Tone, defaultSocialTone))
	if brand := strings.TrimSpace(p.Brand); brand != "" {
		fmt.Fprintf(sb, "The content should reflect %s's brand identity.\n", brand)
	}
	writeKeywords(sb, style.Keywords)

	sb.WriteString(`
Format your response with clear headings for each platform like this:

INSTAGRAM:
[Instagram post content here with hashtags at the end]

FACEBOOK:
[Facebook post content here]

And so on for each requested platform.
`)
	return sb.String()
}
