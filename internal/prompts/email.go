package prompts

import (
	"fmt"
	"strings"

	"copydesk/internal/domain"
)

// BuildEmail creates the marketing email prompt.
func BuildEmail(p domain.Product, style domain.StyleConfig) string {
	sb := &strings.Builder{}
	sb.WriteString("Create a compelling marketing email for the following product:\n\n")
	writeFacts(sb, p, factLabels{
		Name:        "PRODUCT NAME",
		Brand:       "BRAND",
		Price:       "PRICE",
		Category:    "CATEGORY",
		Features:    "FEATURES",
		Materials:   "MATERIALS",
		Colors:      "COLORS",
		Basic:       "BASIC DESCRIPTION",
		Tags:        "KEYWORDS",
		MaxFeatures: maxEmailFeatures,
	})
	if p.DetailedDescription != "" {
		fmt.Fprintf(sb, "DETAILED DESCRIPTION: %s\n", strings.TrimSpace(p.DetailedDescription))
	}

	sb.WriteString("\nGUIDELINES\n")
	fmt.Fprintf(sb, "TONE: %s\n", coalesce(style.Tone, defaultEmailTone))
	fmt.Fprintf(sb, "LENGTH: %s\n", lengthClause(emailLengths, style.Length))
	fmt.Fprintf(sb, "TARGET AUDIENCE: %s\n", coalesce(style.Audience, defaultAudience))
	writeKeywords(sb, style.Keywords)

	sb.WriteString("\nGenerate a marketing email using this structure:\n\n")
	sb.WriteString("SUBJECT LINE:\n")
	fmt.Fprintf(sb, "- Create a %s subject line that sparks curiosity or highlights a key benefit.\n\n", emailSubjectLength)
	sb.WriteString("OPENING HOOK:\n")
	sb.WriteString("- Start with a relatable question or scenario addressing the reader's pain point.\n\n")
	sb.WriteString("BODY:\n")
	sb.WriteString("- Use a benefit-focused phrase like \"Why [Product] Works Better\".\n")
	sb.WriteString("- Highlight 2-3 outcomes like \"Saves time\" or \"Reduces stress\".\n")
	sb.WriteString("- Mention exclusivity and link benefits to specific struggles.\n\n")
	sb.WriteString("CALL-TO-ACTION:\n")
	sb.WriteString("- Use action verbs.\n\n")
	sb.WriteString("URGENCY ELEMENT:\n")
	sb.WriteString("- Add subtle urgency like \"Limited stock available.\"\n\n")
	sb.WriteString("FORMATTING:\n")
	sb.WriteString("- Write in second person (\"you\").\n")
	sb.WriteString("- Avoid generic terms like \"innovative\".\n")
	sb.WriteString("- The body may use Markdown for emphasis and short lists.\n")

	sb.WriteString("\nFollow this structure when formulating your response:\n")
	sb.WriteString("Subject Line: [Your subject line]\n\n")
	sb.WriteString("Email Body: [Email body with subheading, benefits, and call-to-action]\n")
	return sb.String()
}
