package prompts

import (
	"fmt"
	"strings"

	"copydesk/internal/domain"
)

// BuildSEO creates the prompt for an SEO title tag and meta description. The
// requested answer layout is the one ParseSEO reads first.
func BuildSEO(p domain.Product, style domain.StyleConfig) string {
	sb := &strings.Builder{}
	sb.WriteString("Generate SEO-optimized title and meta description for the following e-commerce product:\n\n")
	writeFacts(sb, p, factLabels{
		Name:        "PRODUCT NAME",
		Brand:       "BRAND",
		Price:       "PRICE",
		Category:    "CATEGORY",
		Features:    "FEATURES",
		Materials:   "MATERIALS",
		Colors:      "COLORS",
		Basic:       "BASIC DESCRIPTION",
		Tags:        "TAGS",
		MaxFeatures: maxSEOFeatures,
	})

	sb.WriteString("\nGUIDELINES\n")
	fmt.Fprintf(sb, "TONE: %s\n", coalesce(style.Tone, domain.DefaultTone))
	if kws := nonEmpty(style.Keywords); len(kws) > 0 {
		fmt.Fprintf(sb, "PRIMARY KEYWORDS: %s\n", strings.Join(kws, ", "))
	}

	fmt.Fprintf(sb, "\nGenerate a compelling SEO title tag (%s) using the following guidelines:\n", seoTitleRange)
	sb.WriteString("- Start with the primary keyword\n")
	sb.WriteString("- Include the brand name and price prominently.\n")
	sb.WriteString("- Avoid keyword stuffing but ensure search engine optimization.\n")
	sb.WriteString("- Keep it concise and descriptive.\n")

	fmt.Fprintf(sb, "\nWrite a meta description (%s) adhering to these rules:\n", seoMetaRange)
	sb.WriteString("- Naturally include primary and secondary keywords\n")
	sb.WriteString("- Add a call-to-action like 'shop now', 'learn more' or 'discover today'.\n")
	sb.WriteString("- Avoid repeating the title's exact phrasing.\n")
	sb.WriteString("- Use persuasive phrases like 'exclusive offer', 'premium quality' or 'limited-time deal'.\n")

	sb.WriteString("\nFollow this structure when formulating your response:\n")
	sb.WriteString("Title: [Your SEO title here]\n\n")
	sb.WriteString("Description: [Your meta description here]\n")
	return sb.String()
}
