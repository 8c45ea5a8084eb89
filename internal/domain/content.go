package domain

import "sort"

// ContentType tags a generation target.
type ContentType string

const (
	ContentProductDescription ContentType = "product_description"
	ContentSEO                ContentType = "seo"
	ContentMarketingEmail     ContentType = "marketing_email"
	ContentSocialMedia        ContentType = "social_media"
	ContentMissingFields      ContentType = "missing_fields"
)

var contentTypes = map[ContentType]struct{}{
	ContentProductDescription: {},
	ContentSEO:                {},
	ContentMarketingEmail:     {},
	ContentSocialMedia:        {},
	ContentMissingFields:      {},
}

// Valid reports whether t is a supported content type.
func (t ContentType) Valid() bool {
	_, ok := contentTypes[t]
	return ok
}

// ContentTypes returns the supported tags sorted alphabetically.
func ContentTypes() []ContentType {
	out := make([]ContentType, 0, len(contentTypes))
	for t := range contentTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DescriptionContent is the product_description result.
type DescriptionContent struct {
	DetailedDescription string `json:"detailed_description"`
}

// SEOContent is the seo result.
type SEOContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EmailContent is the marketing_email result. BodyHTML is the Markdown
// rendering of Body.
type EmailContent struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html,omitempty"`
}

// SocialContent maps a platform key to its post.
type SocialContent map[string]string

// FieldValues holds generated product fields keyed by lowercase field name.
// Values are strings, float64 or []string.
type FieldValues map[string]any

// ImageContent is the result of a product image generation.
type ImageContent struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
}

// Bundle maps each requested content type to its result.
type Bundle map[ContentType]any

// Product record field names, as used on the wire and in missing-field prompts.
const (
	FieldName             = "name"
	FieldBrand            = "brand"
	FieldBasicDescription = "basic_description"
	FieldPrice            = "price"
	FieldCategory         = "category"
	FieldSubcategory      = "subcategory"
	FieldFeatures         = "features"
	FieldMaterials        = "materials"
	FieldColors           = "colors"
	FieldTags             = "tags"
)

// RequiredFields are the scalar fields checked by missing-field detection.
var RequiredFields = []string{FieldName, FieldBrand, FieldBasicDescription, FieldPrice, FieldCategory, FieldSubcategory}

// ListFields are the sequence fields checked by missing-field detection.
var ListFields = []string{FieldFeatures, FieldMaterials, FieldColors, FieldTags}

// IsListField reports whether name is one of ListFields.
func IsListField(name string) bool {
	for _, f := range ListFields {
		if f == name {
			return true
		}
	}
	return false
}
