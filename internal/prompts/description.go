package prompts

import (
	"fmt"
	"strings"

	"copydesk/internal/domain"
)

// BuildDescription creates the long-form product description prompt.
func BuildDescription(p domain.Product, style domain.StyleConfig) string {
	sb := &strings.Builder{}
	sb.WriteString("Create a compelling product description for the following e-commerce product:\n\n")
	writeFacts(sb, p, factLabels{
		Name:      "PRODUCT",
		Brand:     "BRAND",
		Price:     "PRICE",
		Category:  "CATEGORY",
		Features:  "KEY FEATURES",
		Materials: "MATERIALS",
		Colors:    "AVAILABLE COLORS",
		Basic:     "BASIC PRODUCT INFO",
		Tags:      "TARGET KEYWORDS",
		Bulleted:  true,
		Bullet:    "•",
	})

	sb.WriteString("\n--- WRITING INSTRUCTIONS ---\n")
	fmt.Fprintf(sb, "TONE: %s\n", coalesce(style.Tone, domain.DefaultTone))
	fmt.Fprintf(sb, "LENGTH: %s\n", lengthClause(descriptionLengths, style.Length))
	fmt.Fprintf(sb, "TARGET AUDIENCE: %s\n", coalesce(style.Audience, defaultAudience))

	sb.WriteString("\nSTRUCTURE:\n")
	sb.WriteString("1. Start with an attention-grabbing opening that highlights a key benefit\n")
	sb.WriteString("2. Describe what the product is and its primary use cases\n")
	sb.WriteString("3. Highlight 3-4 key features and their benefits to the user\n")
	sb.WriteString("4. Include relevant details about quality, materials, or design\n")
	sb.WriteString("5. End with a concise call-to-action or value proposition\n")

	sb.WriteString("\nADDITIONAL GUIDELINES:\n")
	sb.WriteString("• Use active voice and present tense\n")
	sb.WriteString("• Focus on benefits, not just features\n")
	sb.WriteString("• Create vivid, sensory language where appropriate\n")
	sb.WriteString("• Avoid clichés and generic marketing language\n")

	writeKeywords(sb, style.Keywords)

	sb.WriteString("\nProvide the product description as a cohesive, ready-to-use text without headings or bullet points unless they enhance readability. Don't include any disclaimers or explanations about the content.")
	return sb.String()
}
