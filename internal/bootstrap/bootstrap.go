// Package bootstrap assembles the service components from configuration.
// Both the API server and the catalog CLI build on it.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"copydesk/internal/adapter/repo"
	"copydesk/internal/content"
	"copydesk/internal/domain"
	"copydesk/internal/infra"
	"copydesk/internal/providers/llm"
	"copydesk/internal/storage"
)

// NewGenerators picks the text backend named by LLMProvider. Images come
// from OpenAI whenever a key is configured and from the static backend
// otherwise.
func NewGenerators(cfg *infra.Config, log zerolog.Logger) (llm.TextGenerator, llm.ImageGenerator, error) {
	var openAI *llm.OpenAIGenerator
	if cfg.OpenAIAPIKey != "" {
		gen, err := llm.NewOpenAIGenerator(llm.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			ImageModel:   cfg.OpenAIImageModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			MaxRetries:   cfg.OpenAIMaxRetries,
			OnWarning: func(reason, detail string) {
				log.Warn().Str("reason", reason).Str("detail", detail).Msg("openai model normalized")
			},
		})
		if err != nil {
			return nil, nil, err
		}
		openAI = gen
	}

	static := llm.NewStaticGenerator()
	var images llm.ImageGenerator = static
	if openAI != nil {
		images = openAI
	}

	switch cfg.LLMProvider {
	case infra.ProviderOpenAI:
		if openAI == nil {
			return nil, nil, fmt.Errorf("bootstrap: %s provider requires OPENAI_API_KEY", cfg.LLMProvider)
		}
		return openAI, images, nil
	case infra.ProviderGemini:
		gen, err := llm.NewGeminiGenerator(llm.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
		return gen, images, nil
	case infra.ProviderStatic:
		return static, images, nil
	default:
		return nil, nil, fmt.Errorf("bootstrap: unsupported llm provider %q", cfg.LLMProvider)
	}
}

// OpenCatalog returns the Postgres catalog when DATABASE_URL is set and the
// JSON file catalog at DATA_PATH otherwise. The returned func releases the
// underlying resources.
func OpenCatalog(ctx context.Context, cfg *infra.Config, log zerolog.Logger) (domain.ProductRepository, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		products := repo.NewProductRepository(infra.NewSQLRunner(pool, log))
		if err := products.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("bootstrap: ensure schema: %w", err)
		}
		log.Info().Msg("product catalog backed by postgres")
		return products, pool.Close, nil
	}

	store, err := storage.NewFileStore(filepath.Dir(cfg.DataPath))
	if err != nil {
		return nil, nil, err
	}
	catalog, err := storage.NewJSONCatalog(ctx, store, filepath.Base(cfg.DataPath))
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("path", cfg.DataPath).Msg("product catalog backed by json file")
	return catalog, func() {}, nil
}

// NewOrchestrator maps the generation limits of cfg onto content options.
func NewOrchestrator(cfg *infra.Config, text llm.TextGenerator, images llm.ImageGenerator, products content.ProductLookup, log zerolog.Logger) *content.Orchestrator {
	return content.NewOrchestrator(text, images, products, content.Options{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Concurrency: cfg.GenerationConcurrency,
		ImageSize:   cfg.ImageSize,
		Logger:      log,
	})
}
