package factory

import (
	"fmt"

	"manasfit-be/pkg/llm"
	"manasfit-be/pkg/llm/gemini"
	genaiprovider "manasfit-be/pkg/llm/genai"
	"manasfit-be/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderGenAI  = "genai"
	ProviderOllama = "ollama"
)

type Config struct {
	Provider string
	APIKey   string
	APIURL   string
	Model    string
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		return gemini.NewProvider(cfg.APIKey, cfg.APIURL, cfg.Model), nil
	case ProviderGenAI:
		return genaiprovider.NewProvider(cfg.APIKey, cfg.Model), nil
	case ProviderOllama:
		return ollama.NewOllamaProvider(cfg.APIURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
