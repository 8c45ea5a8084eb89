package infra

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LLM_PROVIDER", "OPENAI_API_KEY", "GEMINI_API_KEY", "MODEL_NAME", "OPENAI_MODEL", "MAX_TOKENS", "TEMPERATURE", "GENERATION_CONCURRENCY", "DATA_PATH", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.LLMProvider != ProviderOpenAI {
		t.Fatalf("LLMProvider = %q", cfg.LLMProvider)
	}
	if cfg.OpenAIModel != "gpt-3.5-turbo" {
		t.Fatalf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.MaxTokens != 1000 || cfg.Temperature != 0.7 {
		t.Fatalf("limits = %d %v", cfg.MaxTokens, cfg.Temperature)
	}
	if cfg.DataPath != "data/sample_products.json" {
		t.Fatalf("DataPath = %q", cfg.DataPath)
	}
	if cfg.GenerationConcurrency != 1 {
		t.Fatalf("GenerationConcurrency = %d", cfg.GenerationConcurrency)
	}
}

func TestLoadConfigModelNamePrecedence(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("OpenAIModel = %q, want OPENAI_MODEL value", cfg.OpenAIModel)
	}

	t.Setenv("MODEL_NAME", "gpt-4o")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Fatalf("OpenAIModel = %q, want MODEL_NAME value", cfg.OpenAIModel)
	}
}

func TestLoadConfigParsesOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("LLM_PROVIDER", "Static")
	t.Setenv("MAX_TOKENS", "400")
	t.Setenv("TEMPERATURE", "0.2")
	t.Setenv("GENERATION_CONCURRENCY", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.LLMProvider != ProviderStatic || cfg.MaxTokens != 400 || cfg.Temperature != 0.2 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.GenerationConcurrency != 1 {
		t.Fatalf("GenerationConcurrency = %d, want clamp to 1", cfg.GenerationConcurrency)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins = %#v", cfg.CORSOrigins)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "openai_without_key", env: map[string]string{"LLM_PROVIDER": "openai"}},
		{name: "gemini_without_key", env: map[string]string{"LLM_PROVIDER": "gemini", "OPENAI_API_KEY": "sk"}},
		{name: "unknown_provider", env: map[string]string{"LLM_PROVIDER": "llama"}},
		{name: "bad_temperature", env: map[string]string{"LLM_PROVIDER": "static", "TEMPERATURE": "3"}},
		{name: "bad_max_tokens", env: map[string]string{"LLM_PROVIDER": "static", "MAX_TOKENS": "-5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearProviderEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
