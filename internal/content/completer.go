package content

import (
	"context"
	"strings"

	"copydesk/internal/domain"
)

// Completer fills in a partial product record. Missing catalog fields are
// generated first and merged; copy is then generated against the merged
// record, one group at a time, and only for groups still empty.
type Completer struct {
	orchestrator *Orchestrator
}

func NewCompleter(o *Orchestrator) *Completer {
	return &Completer{orchestrator: o}
}

// Complete returns a new record; p is left untouched. Any generation failure
// aborts the completion.
func (c *Completer) Complete(ctx context.Context, p domain.Product) (domain.Product, error) {
	o := c.orchestrator
	merged := p.Clone()

	out, err := o.generateOne(ctx, merged, domain.ContentMissingFields, domain.StyleConfig{}, domain.PlatformConfig{})
	if err != nil {
		return domain.Product{}, err
	}
	FillAbsent(&merged, out.(domain.FieldValues))

	if strings.TrimSpace(merged.DetailedDescription) == "" {
		out, err := o.generateOne(ctx, merged, domain.ContentProductDescription, completionDescriptionStyle, domain.PlatformConfig{})
		if err != nil {
			return domain.Product{}, err
		}
		merged.DetailedDescription = out.(domain.DescriptionContent).DetailedDescription
	}

	if strings.TrimSpace(merged.SEOTitle) == "" || strings.TrimSpace(merged.SEODescription) == "" {
		out, err := o.generateOne(ctx, merged, domain.ContentSEO, completionSEOStyle, domain.PlatformConfig{})
		if err != nil {
			return domain.Product{}, err
		}
		seo := out.(domain.SEOContent)
		if strings.TrimSpace(merged.SEOTitle) == "" {
			merged.SEOTitle = seo.Title
		}
		if strings.TrimSpace(merged.SEODescription) == "" {
			merged.SEODescription = seo.Description
		}
	}

	if !merged.HasEmail() {
		out, err := o.generateOne(ctx, merged, domain.ContentMarketingEmail, completionEmailStyle, domain.PlatformConfig{})
		if err != nil {
			return domain.Product{}, err
		}
		email := out.(domain.EmailContent)
		ensureMarketingCopy(&merged).Email = &domain.EmailCopy{Subject: email.Subject, Body: email.Body}
	}

	if !merged.HasSocialMedia() {
		out, err := o.generateOne(ctx, merged, domain.ContentSocialMedia, completionSocialStyle, completionPlatforms)
		if err != nil {
			return domain.Product{}, err
		}
		ensureMarketingCopy(&merged).SocialMedia = map[string]string(out.(domain.SocialContent))
	}

	return merged, nil
}

func ensureMarketingCopy(p *domain.Product) *domain.MarketingCopy {
	if p.MarketingCopy == nil {
		p.MarketingCopy = &domain.MarketingCopy{}
	}
	return p.MarketingCopy
}
