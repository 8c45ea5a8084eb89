// Package prompts turns product records and style selections into the
// instruction text sent to the generation capability. Every builder is pure.
package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"copydesk/internal/domain"
)

const (
	defaultAudience    = "general consumers"
	defaultEmailTone   = "enthusiastic"
	defaultSocialTone  = "casual and engaging"
	maxSEOFeatures     = 2
	maxEmailFeatures   = 2
	maxSocialFeatures  = 3
	seoTitleRange      = "40 to 50 characters"
	seoMetaRange       = "100-120 characters"
	emailSubjectLength = "50-60 character"
)

var descriptionLengths = map[string]string{
	domain.LengthShort:  "Concise, approximately 75-100 words",
	domain.LengthMedium: "Balanced, approximately 150-175 words",
	domain.LengthLong:   "Detailed, approximately 200-250 words",
}

var emailLengths = map[string]string{
	domain.LengthShort:  "Brief email, approximately 100-125 words",
	domain.LengthMedium: "Standard email, approximately 175-200 words",
	domain.LengthLong:   "Detailed email, approximately 250-275 words",
}

// lengthClause picks the clause for length, falling back to medium.
func lengthClause(table map[string]string, length string) string {
	if clause, ok := table[strings.ToLower(strings.TrimSpace(length))]; ok {
		return clause
	}
	return table[domain.LengthMedium]
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

// FormatPrice renders a price without trailing zeros, e.g. 49.99 or 120.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstN(items []string, n int) []string {
	items = nonEmpty(items)
	if len(items) > n {
		return items[:n]
	}
	return items
}

// factLabels names each product fact in a builder's own vocabulary. An empty
// label suppresses that fact.
type factLabels struct {
	Name        string
	Brand       string
	Price       string
	Category    string
	Features    string
	Materials   string
	Colors      string
	Basic       string
	Tags        string
	MaxFeatures int
	Bulleted    bool
	Bullet      string
	HashtagTags bool
}

// writeFacts emits the product facts that are present, always in the order
// name, brand, price, category/subcategory, features, materials, colors,
// basic description, tags.
func writeFacts(sb *strings.Builder, p domain.Product, l factLabels) {
	if l.Name != "" && strings.TrimSpace(p.Name) != "" {
		fmt.Fprintf(sb, "%s: %s\n", l.Name, strings.TrimSpace(p.Name))
	}
	if l.Brand != "" && strings.TrimSpace(p.Brand) != "" {
		fmt.Fprintf(sb, "%s: %s\n", l.Brand, strings.TrimSpace(p.Brand))
	}
	if l.Price != "" && p.HasPrice() {
		fmt.Fprintf(sb, "%s: $%s\n", l.Price, FormatPrice(*p.Price))
	}
	if l.Category != "" {
		category := strings.TrimSpace(p.Category)
		sub := strings.TrimSpace(p.Subcategory)
		switch {
		case category != "" && sub != "":
			fmt.Fprintf(sb, "%s: %s > %s\n", l.Category, category, sub)
		case category != "":
			fmt.Fprintf(sb, "%s: %s\n", l.Category, category)
		case sub != "":
			fmt.Fprintf(sb, "SUB%s: %s\n", strings.ToUpper(l.Category), sub)
		}
	}
	features := nonEmpty(p.Features)
	if l.MaxFeatures > 0 {
		features = firstN(features, l.MaxFeatures)
	}
	writeList(sb, l.Features, features, l)
	writeList(sb, l.Materials, nonEmpty(p.Materials), l)
	if colors := nonEmpty(p.Colors); l.Colors != "" && len(colors) > 0 {
		fmt.Fprintf(sb, "%s: %s\n", l.Colors, strings.Join(colors, ", "))
	}
	if l.Basic != "" && strings.TrimSpace(p.BasicDescription) != "" {
		fmt.Fprintf(sb, "%s: %s\n", l.Basic, strings.TrimSpace(p.BasicDescription))
	}
	if tags := nonEmpty(p.Tags); l.Tags != "" && len(tags) > 0 {
		if l.HashtagTags {
			for i, tag := range tags {
				tags[i] = strings.ReplaceAll(tag, " ", "")
			}
		}
		fmt.Fprintf(sb, "%s: %s\n", l.Tags, strings.Join(tags, ", "))
	}
}

func writeList(sb *strings.Builder, label string, items []string, l factLabels) {
	if label == "" || len(items) == 0 {
		return
	}
	if !l.Bulleted {
		fmt.Fprintf(sb, "%s: %s\n", label, strings.Join(items, ", "))
		return
	}
	fmt.Fprintf(sb, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "%s %s\n", l.Bullet, item)
	}
}

func writeKeywords(sb *strings.Builder, keywords []string) {
	if kws := nonEmpty(keywords); len(kws) > 0 {
		fmt.Fprintf(sb, "\nPlease naturally incorporate these keywords: %s\n", strings.Join(kws, ", "))
	}
}
