package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"copydesk/internal/domain"
	"copydesk/internal/parser"
	"copydesk/internal/prompts"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNormalizeOpenAIModel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		input  string
		model  string
		reason string
	}{
		{name: "exact_default", input: "gpt-3.5-turbo", model: "gpt-3.5-turbo"},
		{name: "exact_mini", input: "GPT-4o-mini", model: "gpt-4o-mini"},
		{name: "alias_short", input: "gpt-3.5", model: "gpt-3.5-turbo", reason: "alias"},
		{name: "alias_spaces", input: "gpt 35 turbo", model: "gpt-3.5-turbo", reason: "alias"},
		{name: "passthrough", input: "gpt-4.1", model: "gpt-4.1"},
		{name: "empty", input: "", model: "gpt-3.5-turbo"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gotModel, gotReason := normalizeOpenAIModel(tc.input)
			if gotModel != tc.model {
				t.Fatalf("model = %q, want %q", gotModel, tc.model)
			}
			if gotReason != tc.reason {
				t.Fatalf("reason = %q, want %q", gotReason, tc.reason)
			}
		})
	}
}

func TestNewOpenAIGeneratorRequiresKey(t *testing.T) {
	t.Parallel()
	if _, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "  "}); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func TestNewOpenAIGeneratorWarnsOnAlias(t *testing.T) {
	t.Parallel()
	var reason, detail string
	gen, err := NewOpenAIGenerator(OpenAIOptions{
		APIKey: "dummy",
		Model:  "gpt3.5",
		OnWarning: func(r, d string) {
			reason, detail = r, d
		},
	})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	if gen.Model() != "gpt-3.5-turbo" {
		t.Fatalf("Model = %q", gen.Model())
	}
	if reason != "model_alias" || !strings.Contains(detail, "resolved=gpt-3.5-turbo") {
		t.Fatalf("warning = %q %q", reason, detail)
	}
}

func TestOpenAIGeneratorChatCompletion(t *testing.T) {
	t.Parallel()
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  Title: A\nDescription: B  "}}]}`)
	}))
	defer srv.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	text, err := gen.Generate(context.Background(), TextRequest{System: "You are an SEO specialist.", Prompt: "hello", MaxTokens: 300, Temperature: 0.7})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if text != "Title: A\nDescription: B" {
		t.Fatalf("text = %q", text)
	}
	if captured["model"] != "gpt-3.5-turbo" {
		t.Fatalf("model = %v", captured["model"])
	}
	if captured["max_tokens"] != float64(300) || captured["temperature"] != 0.7 {
		t.Fatalf("limits not forwarded: %v", captured)
	}
	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", captured["messages"])
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" {
		t.Fatalf("first message role = %v", first["role"])
	}
}

func TestOpenAIGeneratorSurfacesErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	if _, err := gen.Generate(context.Background(), TextRequest{Prompt: "hello"}); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestOpenAIGeneratorImage(t *testing.T) {
	t.Parallel()
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/generations" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"created":1,"data":[{"url":"https://img.example/1.png"}]}`)
	}))
	defer srv.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	imageURL, err := gen.GenerateImage(context.Background(), ImageRequest{Prompt: "a mug", Size: "odd"})
	if err != nil {
		t.Fatalf("GenerateImage returned error: %v", err)
	}
	if imageURL != "https://img.example/1.png" {
		t.Fatalf("url = %q", imageURL)
	}
	if captured["size"] != "1024x1024" || captured["model"] != "dall-e-2" {
		t.Fatalf("request = %v", captured)
	}
}

func TestGeminiGenerator(t *testing.T) {
	t.Parallel()
	var captured geminiRequest
	var path, key string
	gen, err := NewGeminiGenerator(GeminiOptions{
		APIKey: "g-key",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			path = r.URL.Path
			key = r.Header.Get("x-goog-api-key")
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				return nil, err
			}
			return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Subject Line: Hi\n"},{"text":"Email Body: Yo"}]}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiGenerator returned error: %v", err)
	}
	text, err := gen.Generate(context.Background(), TextRequest{System: "sys", Prompt: "user", MaxTokens: 100, Temperature: 0.2})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if text != "Subject Line: Hi\nEmail Body: Yo" {
		t.Fatalf("text = %q", text)
	}
	if path != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Fatalf("path = %q", path)
	}
	if key != "g-key" {
		t.Fatalf("api key header = %q", key)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "sys" {
		t.Fatalf("system instruction = %+v", captured.SystemInstruction)
	}
	if captured.GenerationConfig.MaxOutputTokens != 100 {
		t.Fatalf("maxOutputTokens = %d", captured.GenerationConfig.MaxOutputTokens)
	}
}

func TestGeminiGeneratorErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		resp  *http.Response
		err   error
		check func(error) bool
	}{
		{
			name:  "transport",
			err:   errors.New("boom"),
			check: func(err error) bool { return err != nil },
		},
		{
			name: "status",
			resp: jsonResponse(http.StatusTooManyRequests, `{"error":"quota"}`),
			check: func(err error) bool {
				var se *StatusError
				return errors.As(err, &se) && se.Code == http.StatusTooManyRequests
			},
		},
		{
			name:  "empty",
			resp:  jsonResponse(http.StatusOK, `{"candidates":[]}`),
			check: func(err error) bool { return errors.Is(err, ErrEmptyResponse) },
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gen, err := NewGeminiGenerator(GeminiOptions{
				APIKey: "g-key",
				HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					return tc.resp, tc.err
				})},
			})
			if err != nil {
				t.Fatalf("NewGeminiGenerator returned error: %v", err)
			}
			_, err = gen.Generate(context.Background(), TextRequest{Prompt: "x"})
			if !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStaticGeneratorOutputParses(t *testing.T) {
	t.Parallel()
	gen := NewStaticGenerator()
	p := domain.Product{Name: "trail runner", Brand: "Peakline"}
	style := domain.DefaultStyle()
	ctx := context.Background()

	seoText, err := gen.Generate(ctx, TextRequest{Prompt: prompts.BuildSEO(p, style)})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if seo := parser.ParseSEO(seoText); !strings.Contains(seo.Title, "Trail Runner") || seo.Description == "" {
		t.Fatalf("seo = %+v", seo)
	}

	emailText, _ := gen.Generate(ctx, TextRequest{Prompt: prompts.BuildEmail(p, style)})
	if email := parser.ParseEmail(emailText); email.Subject != "Meet the Trail Runner" || email.Body == "" {
		t.Fatalf("email = %+v", email)
	}

	socialText, _ := gen.Generate(ctx, TextRequest{Prompt: prompts.BuildSocial(p, style, domain.DefaultPlatforms())})
	if social := parser.ParseSocial(socialText, domain.DefaultPlatforms()); len(social) != 3 {
		t.Fatalf("social = %v", social)
	}

	fieldsText, _ := gen.Generate(ctx, TextRequest{Prompt: prompts.BuildMissingFields(p)})
	if fields := parser.ParseMissingFields(fieldsText); len(fields) != 0 {
		t.Fatalf("fields = %v", fields)
	}

	imageURL, err := gen.GenerateImage(ctx, ImageRequest{Prompt: "x"})
	if err != nil || !strings.HasPrefix(imageURL, "https://placehold.co/1024x1024") {
		t.Fatalf("image = %q, %v", imageURL, err)
	}
}
