package config

import "time"

// Gemini не требует ключа при старте: без него модельные запросы отвечают
// ошибкой конфигурации.
type Gemini struct {
	APIKey  string        `env:"GEMINI_API_KEY" json:"-"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	BaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
}
