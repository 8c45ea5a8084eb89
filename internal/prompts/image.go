package prompts

import (
	"fmt"
	"strings"

	"copydesk/internal/domain"
)

// BuildImage converts a product into a photography instruction for
// text-to-image models. Clauses whose source field is empty are left out.
func BuildImage(p domain.Product, style domain.ImageStyle) string {
	style = style.WithDefaults()
	var lines []string

	name := coalesce(p.Name, "the featured product")
	opening := fmt.Sprintf("A professional product photograph of %s", name)
	if desc := strings.TrimSpace(p.BasicDescription); desc != "" {
		opening += fmt.Sprintf(", %s", strings.TrimRight(desc, "."))
	}
	lines = append(lines, opening+".")

	category := strings.TrimSpace(p.Category)
	sub := strings.TrimSpace(p.Subcategory)
	switch {
	case category != "" && sub != "":
		lines = append(lines, fmt.Sprintf("It is a %s in the %s subcategory.", category, sub))
	case category != "":
		lines = append(lines, fmt.Sprintf("It is a %s.", category))
	case sub != "":
		lines = append(lines, fmt.Sprintf("It belongs to the %s subcategory.", sub))
	}

	if colors := nonEmpty(p.Colors); len(colors) > 0 {
		lines = append(lines, fmt.Sprintf("The primary color is %s.", colors[0]))
	}
	if materials := nonEmpty(p.Materials); len(materials) > 0 {
		lines = append(lines, fmt.Sprintf("It is primarily made out of %s.", materials[0]))
	}

	lines = append(lines, fmt.Sprintf("The photo is taken on a %s background with %s styling.", style.Background, style.Style))
	lines = append(lines, fmt.Sprintf("The photograph should be in %s, taken from a %s.", style.Lighting, style.Perspective))
	lines = append(lines,
		"Photo requirements:",
		"- Professional and clear e-commerce quality.",
		"- No text, labels or watermarks.",
		"- Composition that flatters the product with minimal distraction.",
		"- A visually appealing color scheme.",
		"- A natural look instead of a heavily processed one.",
	)
	return strings.Join(lines, "\n")
}
