package advisor

import (
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ProviderConfig selects and configures the assistant model backend.
type ProviderConfig struct {
	// Provider is "openai" or "azure".
	Provider string `yaml:"provider"`
	// Model is the model or deployment name.
	Model string `yaml:"model"`
	// BaseURL overrides the API endpoint; required for azure.
	BaseURL string `yaml:"base_url"`
	// APIKeyEnv names the environment variable holding the key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// DefaultProviderConfig is used when the config file omits the advisor
// section.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		APIKeyEnv: "OPENAI_API_KEY",
	}
}

// NewModel initializes the assistant model from config.
func NewModel(cfg ProviderConfig) (llms.LLM, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("advisor: %s environment variable not set", cfg.APIKeyEnv)
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(apiKey),
	}

	switch cfg.Provider {
	case "openai", "":
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
	case "azure":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("advisor: azure provider requires base_url")
		}
		opts = append(opts,
			openai.WithAPIType(openai.APITypeAzure),
			openai.WithBaseURL(cfg.BaseURL),
		)
	default:
		return nil, fmt.Errorf("advisor: unsupported provider: %s", cfg.Provider)
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("advisor: initialize model: %w", err)
	}
	return model, nil
}
