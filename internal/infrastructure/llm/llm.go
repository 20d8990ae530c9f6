// Package llm содержит клиенты внешних языковых моделей.
package llm

import (
	"fmt"
	"net/http"
	"time"

	"wound-analyzer/internal/domain/port"
)

// Поддерживаемые провайдеры
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config настройки клиента модели.
type Config struct {
	Provider    string
	Model       string
	Temperature float64
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
}

// New возвращает клиента выбранного провайдера.
func New(cfg Config) (port.NoteAnalyzer, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAI(cfg, &http.Client{Timeout: cfg.Timeout}), nil
	case ProviderGemini:
		return NewGemini(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
