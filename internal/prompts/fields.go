package prompts

import (
	"fmt"
	"strings"

	"copydesk/internal/domain"
)

// MissingFields lists the required scalar and list fields absent from p, in
// the order of domain.RequiredFields followed by domain.ListFields.
func MissingFields(p domain.Product) []string {
	var missing []string
	for _, field := range domain.RequiredFields {
		if !scalarPresent(p, field) {
			missing = append(missing, field)
		}
	}
	for _, field := range domain.ListFields {
		if len(nonEmpty(listValue(p, field))) == 0 {
			missing = append(missing, field)
		}
	}
	return missing
}

func scalarPresent(p domain.Product, field string) bool {
	switch field {
	case domain.FieldName:
		return strings.TrimSpace(p.Name) != ""
	case domain.FieldBrand:
		return strings.TrimSpace(p.Brand) != ""
	case domain.FieldBasicDescription:
		return strings.TrimSpace(p.BasicDescription) != ""
	case domain.FieldPrice:
		return p.HasPrice()
	case domain.FieldCategory:
		return strings.TrimSpace(p.Category) != ""
	case domain.FieldSubcategory:
		return strings.TrimSpace(p.Subcategory) != ""
	default:
		return false
	}
}

func listValue(p domain.Product, field string) []string {
	switch field {
	case domain.FieldFeatures:
		return p.Features
	case domain.FieldMaterials:
		return p.Materials
	case domain.FieldColors:
		return p.Colors
	case domain.FieldTags:
		return p.Tags
	default:
		return nil
	}
}

// BuildMissingFields asks for a JSON object holding only the absent fields.
func BuildMissingFields(p domain.Product) string {
	missing := MissingFields(p)

	sb := &strings.Builder{}
	sb.WriteString("Generate missing product information fields based on the available data:\n\n")
	sb.WriteString("PRODUCT INFORMATION:\n")
	writeFacts(sb, p, factLabels{
		Name:      "NAME",
		Brand:     "BRAND",
		Price:     "PRICE",
		Category:  "CATEGORY",
		Features:  "FEATURES",
		Materials: "MATERIALS",
		Colors:    "COLORS",
		Basic:     "BASIC_DESCRIPTION",
		Tags:      "TAGS",
	})
	if p.DetailedDescription != "" {
		fmt.Fprintf(sb, "DETAILED_DESCRIPTION: %s\n", strings.TrimSpace(p.DetailedDescription))
	}

	sb.WriteString("\nGenerate the following missing fields:\n")
	if len(missing) == 0 {
		sb.WriteString("- (none)\n")
	}
	for _, field := range missing {
		fmt.Fprintf(sb, "- %s\n", field)
	}

	sb.WriteString("\nGUIDELINES\n")
	sb.WriteString("- Make sure every generated value is realistic and consistent with the existing information.\n")
	sb.WriteString("- For materials, list 1-3 primary materials used in the product.\n")
	sb.WriteString("- For colors, list 2-3 commonly available color options.\n")
	sb.WriteString("- For tags, generate 2-3 relevant search terms.\n")
	sb.WriteString("- For price, give a market price in USD as a number without currency symbol.\n")
	sb.WriteString("- For basic_description, give a 1-2 sentence overview that highlights the strengths of the product.\n")
	sb.WriteString("- Only return the fields listed above. Fields that already have a value must be omitted or returned unchanged.\n")

	sb.WriteString(`
Respond strictly with a JSON object in this shape:
{
  "field_name": "value",
  "list_field": ["item1", "item2", "item3"]
}
`)
	return sb.String()
}
