package llmprovider

import (
	"fmt"

	"calendar-assistant/config"
	"calendar-assistant/pkg/gemini"
)

// Default OpenAI-compatible endpoints for providers that speak the OpenAI wire format.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// InitializeProvider creates the Provider instance described by config.LLMConfig.
func InitializeProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case "openai", "":
		model := cfg.Model
		if model == "" {
			model = "gpt-3.5-turbo"
		}
		return NewOpenAIAdapter("openai", cfg.APIKey, cfg.BaseURL, model), nil

	case "deepseek":
		return NewOpenAIAdapter("deepseek", cfg.APIKey, orDefault(cfg.BaseURL, DeepSeekBaseURL), orDefault(cfg.Model, "deepseek-chat")), nil

	case "qwen", "alibaba":
		return NewOpenAIAdapter("qwen", cfg.APIKey, orDefault(cfg.BaseURL, QwenBaseURL), orDefault(cfg.Model, "qwen-plus")), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
