package domain

// Product is a catalog record. Optional strings use the empty value for
// "absent"; list fields treat nil and empty alike. Price is a pointer so a
// free product (0) stays distinguishable from an unknown price.
type Product struct {
	ID                  string         `json:"id,omitempty"`
	Name                string         `json:"name,omitempty"`
	Brand               string         `json:"brand,omitempty"`
	Price               *float64       `json:"price,omitempty"`
	Category            string         `json:"category,omitempty"`
	Subcategory         string         `json:"subcategory,omitempty"`
	BasicDescription    string         `json:"basic_description,omitempty"`
	Features            []string       `json:"features,omitempty"`
	Materials           []string       `json:"materials,omitempty"`
	Colors              []string       `json:"colors,omitempty"`
	Tags                []string       `json:"tags,omitempty"`
	DetailedDescription string         `json:"detailed_description,omitempty"`
	SEOTitle            string         `json:"seo_title,omitempty"`
	SEODescription      string         `json:"seo_description,omitempty"`
	MarketingCopy       *MarketingCopy `json:"marketing_copy,omitempty"`
}

// MarketingCopy groups generated campaign copy attached to a product.
type MarketingCopy struct {
	Email       *EmailCopy        `json:"email,omitempty"`
	SocialMedia map[string]string `json:"social_media,omitempty"`
}

// EmailCopy is a subject/body pair.
type EmailCopy struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Float returns a pointer to v. Handy for literals in tests and fixtures.
func Float(v float64) *float64 {
	return &v
}

// HasPrice reports whether a price was supplied (zero counts as supplied).
func (p Product) HasPrice() bool {
	return p.Price != nil
}

// PriceValue returns the price or 0 when absent.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// HasEmail reports whether an email has already been attached.
func (p Product) HasEmail() bool {
	return p.MarketingCopy != nil && p.MarketingCopy.Email != nil &&
		(p.MarketingCopy.Email.Subject != "" || p.MarketingCopy.Email.Body != "")
}

// HasSocialMedia reports whether at least one social post is attached.
func (p Product) HasSocialMedia() bool {
	return p.MarketingCopy != nil && len(p.MarketingCopy.SocialMedia) > 0
}

// Clone returns a deep copy so callers can merge without touching the input.
func (p Product) Clone() Product {
	out := p
	if p.Price != nil {
		out.Price = Float(*p.Price)
	}
	out.Features = cloneStrings(p.Features)
	out.Materials = cloneStrings(p.Materials)
	out.Colors = cloneStrings(p.Colors)
	out.Tags = cloneStrings(p.Tags)
	if p.MarketingCopy != nil {
		mc := &MarketingCopy{}
		if p.MarketingCopy.Email != nil {
			email := *p.MarketingCopy.Email
			mc.Email = &email
		}
		if p.MarketingCopy.SocialMedia != nil {
			mc.SocialMedia = make(map[string]string, len(p.MarketingCopy.SocialMedia))
			for k, v := range p.MarketingCopy.SocialMedia {
				mc.SocialMedia[k] = v
			}
		}
		out.MarketingCopy = mc
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ProductFilter narrows catalog listings. Zero values disable a criterion.
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
}

// Match reports whether p satisfies every configured criterion.
func (f ProductFilter) Match(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.MinPrice != nil && p.PriceValue() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.PriceValue() > *f.MaxPrice {
		return false
	}
	return true
}
