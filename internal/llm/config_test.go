package llm

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv()
	if cfg.Provider == "" {
		t.Fatal("expected a default provider")
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LESSONLINT_LLM_PROVIDER", "openai")
	t.Setenv("LESSONLINT_OPENAI_API_KEY", "sk-test")
	t.Setenv("LESSONLINT_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("API key not picked up")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model not picked up")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "llamafarm"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name not resolved: %q", got)
	}
	if got := resolveModel("claude-custom-id", anthropicModels); got != "claude-custom-id" {
		t.Errorf("direct ID should pass through: %q", got)
	}
}
