// Package content drives generation: it builds prompts, calls the configured
// generator, parses the answers and assembles per-type results.
package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"copydesk/internal/domain"
	"copydesk/internal/parser"
	"copydesk/internal/prompts"
	"copydesk/internal/providers/llm"
	"copydesk/internal/render"
)

const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// ProductLookup resolves catalog ids.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Options carries generation limits shared by every call of an Orchestrator.
type Options struct {
	MaxTokens   int
	Temperature float64
	// Concurrency bounds how many content types of one request are generated
	// at once. Values below 2 generate sequentially in request order.
	Concurrency int
	ImageSize   string
	Logger      zerolog.Logger
}

// Request selects a product, either by id or inline, and the content to
// produce for it. ProductID wins when both are set.
type Request struct {
	ProductID    string
	Product      *domain.Product
	ContentTypes []domain.ContentType
	Style        domain.StyleConfig
	Platforms    *domain.PlatformConfig
}

// Result is the resolved product and the generated bundle.
type Result struct {
	Product          domain.Product `json:"product"`
	GeneratedContent domain.Bundle  `json:"generated_content"`
}

type Orchestrator struct {
	text     llm.TextGenerator
	images   llm.ImageGenerator
	products ProductLookup
	opts     Options
	log      zerolog.Logger
}

// NewOrchestrator wires the generators and catalog. images and products may
// be nil; the operations that need them then fail with an error.
func NewOrchestrator(text llm.TextGenerator, images llm.ImageGenerator, products ProductLookup, opts Options) *Orchestrator {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Temperature < 0 {
		opts.Temperature = DefaultTemperature
	}
	return &Orchestrator{
		text:     text,
		images:   images,
		products: products,
		opts:     opts,
		log:      opts.Logger.With().Str("component", "content").Logger(),
	}
}

// ContentTypes lists the supported content type tags.
func (o *Orchestrator) ContentTypes() []domain.ContentType {
	return domain.ContentTypes()
}

// Generate resolves the product and produces every requested content type.
// All tags are validated first; one unknown tag fails the request before any
// generation starts. Any generation failure fails the whole request.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	types := req.ContentTypes
	if len(types) == 0 {
		types = []domain.ContentType{domain.ContentProductDescription}
	}
	for _, ct := range types {
		if !ct.Valid() {
			return nil, domain.InvalidRequestf("unsupported content type %q", ct)
		}
	}
	product, err := o.resolveProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	platforms := domain.DefaultPlatforms()
	if req.Platforms != nil {
		platforms = *req.Platforms
	}

	bundle := domain.Bundle{}
	if o.opts.Concurrency < 2 || len(types) < 2 {
		for _, ct := range types {
			out, err := o.generateOne(ctx, product, ct, req.Style, platforms)
			if err != nil {
				return nil, err
			}
			bundle[ct] = out
		}
		return &Result{Product: product, GeneratedContent: bundle}, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Concurrency)
	for _, ct := range types {
		ct := ct
		g.Go(func() error {
			out, err := o.generateOne(gctx, product, ct, req.Style, platforms)
			if err != nil {
				return err
			}
			mu.Lock()
			bundle[ct] = out
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Result{Product: product, GeneratedContent: bundle}, nil
}

func (o *Orchestrator) resolveProduct(ctx context.Context, req Request) (domain.Product, error) {
	switch {
	case req.ProductID != "":
		if o.products == nil {
			return domain.Product{}, domain.InvalidRequestf("product lookup is not available")
		}
		p, err := o.products.GetByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Product{}, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrNotFound)
			}
			return domain.Product{}, fmt.Errorf("load product %s: %w", req.ProductID, err)
		}
		return p.Clone(), nil
	case req.Product != nil:
		return req.Product.Clone(), nil
	default:
		return domain.Product{}, domain.InvalidRequestf("either product_id or product_data is required")
	}
}

// generateOne produces a single content type for p. The returned value is
// one of the domain content result types.
func (o *Orchestrator) generateOne(ctx context.Context, p domain.Product, ct domain.ContentType, style domain.StyleConfig, platforms domain.PlatformConfig) (any, error) {
	switch ct {
	case domain.ContentProductDescription:
		raw, err := o.complete(ctx, ct, prompts.BuildDescription(p, style))
		if err != nil {
			return nil, err
		}
		return domain.DescriptionContent{DetailedDescription: raw}, nil
	case domain.ContentSEO:
		raw, err := o.complete(ctx, ct, prompts.BuildSEO(p, style))
		if err != nil {
			return nil, err
		}
		return parser.ParseSEO(raw), nil
	case domain.ContentMarketingEmail:
		raw, err := o.complete(ctx, ct, prompts.BuildEmail(p, style))
		if err != nil {
			return nil, err
		}
		email := parser.ParseEmail(raw)
		html, err := render.MarkdownToHTML(email.Body)
		if err != nil {
			o.log.Warn().Err(err).Msg("email body html rendering failed")
		}
		email.BodyHTML = html
		return email, nil
	case domain.ContentSocialMedia:
		if len(platforms.Requested()) == 0 {
			return domain.SocialContent{}, nil
		}
		raw, err := o.complete(ctx, ct, prompts.BuildSocial(p, style, platforms))
		if err != nil {
			return nil, err
		}
		return parser.ParseSocial(raw, platforms), nil
	case domain.ContentMissingFields:
		if len(prompts.MissingFields(p)) == 0 {
			return domain.FieldValues{}, nil
		}
		raw, err := o.complete(ctx, ct, prompts.BuildMissingFields(p))
		if err != nil {
			return nil, err
		}
		return parser.ParseMissingFields(raw), nil
	default:
		return nil, domain.InvalidRequestf("unsupported content type %q", ct)
	}
}

func (o *Orchestrator) complete(ctx context.Context, ct domain.ContentType, prompt string) (string, error) {
	if o.text == nil {
		return "", &domain.GenerationError{ContentType: ct, Err: errors.New("text generation is not configured")}
	}
	start := time.Now()
	raw, err := o.text.Generate(ctx, llm.TextRequest{
		System:      systemRoles[ct],
		Prompt:      prompt,
		MaxTokens:   o.opts.MaxTokens,
		Temperature: o.opts.Temperature,
	})
	if err != nil {
		o.log.Error().Err(err).Str("content_type", string(ct)).Str("provider", o.text.Name()).Msg("generation failed")
		return "", &domain.GenerationError{ContentType: ct, Err: err}
	}
	o.log.Debug().
		Str("content_type", string(ct)).
		Str("provider", o.text.Name()).
		Int("prompt_chars", len(prompt)).
		Dur("duration", time.Since(start)).
		Msg("content generated")
	return raw, nil
}

// GenerateImage builds the photography prompt for p and asks the image
// backend for a picture.
func (o *Orchestrator) GenerateImage(ctx context.Context, p domain.Product, style domain.ImageStyle) (*domain.ImageContent, error) {
	prompt := prompts.BuildImage(p, style)
	if o.images == nil {
		return nil, &domain.GenerationError{Err: errors.New("image generation is not configured")}
	}
	start := time.Now()
	imageURL, err := o.images.GenerateImage(ctx, llm.ImageRequest{Prompt: prompt, Size: o.opts.ImageSize})
	if err != nil {
		o.log.Error().Err(err).Msg("image generation failed")
		return nil, &domain.GenerationError{Err: err}
	}
	o.log.Debug().Dur("duration", time.Since(start)).Msg("image generated")
	return &domain.ImageContent{ImageURL: imageURL, Prompt: prompt}, nil
}
