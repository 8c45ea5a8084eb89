package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"copydesk/internal/infra"
	"copydesk/internal/providers/llm"
	"copydesk/internal/storage"
)

func TestNewGenerators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		cfg       infra.Config
		wantText  string
		wantImage string
		wantErr   bool
	}{
		{name: "openai", cfg: infra.Config{LLMProvider: infra.ProviderOpenAI, OpenAIAPIKey: "sk-test"}, wantText: llm.ProviderOpenAI, wantImage: "*llm.OpenAIGenerator"},
		{name: "openai without key", cfg: infra.Config{LLMProvider: infra.ProviderOpenAI}, wantErr: true},
		{name: "gemini with static images", cfg: infra.Config{LLMProvider: infra.ProviderGemini, GeminiAPIKey: "g-test"}, wantText: llm.ProviderGemini, wantImage: "*llm.StaticGenerator"},
		{name: "gemini with openai images", cfg: infra.Config{LLMProvider: infra.ProviderGemini, GeminiAPIKey: "g-test", OpenAIAPIKey: "sk-test"}, wantText: llm.ProviderGemini, wantImage: "*llm.OpenAIGenerator"},
		{name: "static", cfg: infra.Config{LLMProvider: infra.ProviderStatic}, wantText: llm.ProviderStatic, wantImage: "*llm.StaticGenerator"},
		{name: "unknown", cfg: infra.Config{LLMProvider: "claude"}, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			text, images, err := NewGenerators(&tc.cfg, zerolog.Nop())
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGenerators returned error: %v", err)
			}
			if text.Name() != tc.wantText {
				t.Fatalf("text backend = %s, want %s", text.Name(), tc.wantText)
			}
			if got := typeName(images); got != tc.wantImage {
				t.Fatalf("image backend = %s, want %s", got, tc.wantImage)
			}
		})
	}
}

func typeName(v llm.ImageGenerator) string {
	switch v.(type) {
	case *llm.OpenAIGenerator:
		return "*llm.OpenAIGenerator"
	case *llm.StaticGenerator:
		return "*llm.StaticGenerator"
	default:
		return "unknown"
	}
}

func TestOpenCatalogUsesJSONFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte(`[{"id":"prod001","name":"Mug"}]`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	products, closeFn, err := OpenCatalog(context.Background(), &infra.Config{DataPath: path}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenCatalog returned error: %v", err)
	}
	defer closeFn()
	if _, ok := products.(*storage.JSONCatalog); !ok {
		t.Fatalf("catalog type = %T", products)
	}
	p, err := products.GetByID(context.Background(), "prod001")
	if err != nil || p.Name != "Mug" {
		t.Fatalf("GetByID = %+v, %v", p, err)
	}
}

func TestNewOrchestratorMapsLimits(t *testing.T) {
	t.Parallel()
	gen := llm.NewStaticGenerator()
	o := NewOrchestrator(&infra.Config{MaxTokens: 256, Temperature: 0.2, GenerationConcurrency: 3}, gen, gen, nil, zerolog.Nop())
	if o == nil || len(o.ContentTypes()) != 5 {
		t.Fatalf("orchestrator = %v", o)
	}
}
