// Package llm provides centralized LLM configuration and client abstractions
// for the LLM-backed analysis path.
package llm

// ModelTier selects how much model capability a call pays for.
type ModelTier string

const (
	// TierLite handles short classification and keyword pulls.
	TierLite ModelTier = "lite"
	// TierStandard handles job-description extraction and match scoring.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles tailoring recommendations.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM provider.
type Provider string

const (
	ProviderGemini Provider = "gemini"
)

// Config maps model tiers to concrete provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default provider configuration (currently Gemini).
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini model mapping.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves the model name for a tier. Unknown tiers fall back to
// standard, then lite, so a partially configured mapping still serves calls.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	for _, fallback := range []ModelTier{TierStandard, TierLite} {
		if model, ok := c.Models[fallback]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier remapped. The
// receiver is left untouched.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models}
}
