package content

import (
	"strings"

	"copydesk/internal/domain"
)

// FillAbsent copies generated values into p for fields that are absent.
// A string is absent when blank, a list when it has no non-blank item and the
// price when nil, so a price of 0 is kept. Present values are never replaced
// and values of the wrong type are ignored.
func FillAbsent(p *domain.Product, values domain.FieldValues) {
	for key, value := range values {
		switch key {
		case domain.FieldPrice:
			if price, ok := value.(float64); ok && p.Price == nil && price >= 0 {
				p.Price = domain.Float(price)
			}
		case domain.FieldFeatures:
			fillList(&p.Features, value)
		case domain.FieldMaterials:
			fillList(&p.Materials, value)
		case domain.FieldColors:
			fillList(&p.Colors, value)
		case domain.FieldTags:
			fillList(&p.Tags, value)
		case domain.FieldName:
			fillString(&p.Name, value)
		case domain.FieldBrand:
			fillString(&p.Brand, value)
		case domain.FieldBasicDescription:
			fillString(&p.BasicDescription, value)
		case domain.FieldCategory:
			fillString(&p.Category, value)
		case domain.FieldSubcategory:
			fillString(&p.Subcategory, value)
		}
	}
}

func fillString(dst *string, value any) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(*dst) != "" || strings.TrimSpace(s) == "" {
		return
	}
	*dst = strings.TrimSpace(s)
}

func fillList(dst *[]string, value any) {
	items, ok := value.([]string)
	if !ok || hasItems(*dst) || !hasItems(items) {
		return
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}

func hasItems(items []string) bool {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}
