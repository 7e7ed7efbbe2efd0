// Package llm provides the LLM client used by the analysis service.
package llm

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Generation defaults used by the analysis service.
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultTemperature     = float32(0.7)
	DefaultMaxOutputTokens = int32(300)
)

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// WithModel returns a copy of the Config using model. An empty model keeps the current one.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}

// WithSampling returns a copy of the Config with the given temperature and
// output token limit. Non-positive token limits keep the current value.
func (c *Config) WithSampling(temperature float32, maxOutputTokens int32) *Config {
	out := *c
	out.Temperature = temperature
	if maxOutputTokens > 0 {
		out.MaxOutputTokens = maxOutputTokens
	}
	return &out
}
