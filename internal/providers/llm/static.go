package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StaticGenerator returns canned copy shaped like real model output. It lets
// the service run offline and backs local demos.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (s *StaticGenerator) Name() string { return ProviderStatic }

var productNameLabels = []string{"PRODUCT NAME:", "PRODUCT:", "Product Name:", "NAME:"}

func (s *StaticGenerator) Generate(ctx context.Context, req TextRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := cases.Title(language.English).String(productName(req.Prompt))
	switch {
	case strings.Contains(req.Prompt, "Generate missing product information"):
		return "{}", nil
	case strings.Contains(req.Prompt, "Subject Line:"):
		return fmt.Sprintf("Subject Line: Meet the %s\n\nEmail Body: You deserve gear that keeps up with you.\n\nThe **%s** is ready when you are. Order today while stock lasts.", name, name), nil
	case strings.Contains(req.Prompt, "Title: ["):
		return fmt.Sprintf("Title: %s | Shop Now\nDescription: Discover the %s. Premium quality at a fair price, shop now and see the difference today.", name, name), nil
	case strings.Contains(req.Prompt, "social media posts"):
		return fmt.Sprintf("INSTAGRAM:\nSay hello to the %s ✨ #newarrival\n\nFACEBOOK:\nWhat would you do with the %s? Find out today.\n\nTWITTER:\nThe %s just landed. #shopnow\n\nLINKEDIN:\nThe %s helps teams work smarter.", name, name, name, name), nil
	default:
		return fmt.Sprintf("The %s brings thoughtful design to everyday use. Built to last and easy to love, it is ready to become a favorite.", name), nil
	}
}

func (s *StaticGenerator) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	size := strings.TrimSpace(req.Size)
	if size == "" {
		size = defaultImageSize
	}
	return fmt.Sprintf("https://placehold.co/%s?text=%s", size, url.QueryEscape("product photo")), nil
}

func productName(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		for _, label := range productNameLabels {
			if strings.HasPrefix(line, label) {
				if name := strings.TrimSpace(strings.TrimPrefix(line, label)); name != "" {
					return name
				}
			}
		}
	}
	return "featured product"
}

var (
	_ TextGenerator  = (*StaticGenerator)(nil)
	_ ImageGenerator = (*StaticGenerator)(nil)
)
