// Package summarizer shortens scraped article text with an LLM. Claude
// (anthropic-sdk-go) and OpenAI (go-openai) are supported; the default noop
// implementation only trims the text.
package summarizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"news-website/pkg/config"
)

const (
	TypeNoop   = "noop"
	TypeClaude = "claude"
	TypeOpenAI = "openai"

	minCharLimit = 100
	maxCharLimit = 5000
)

// Config selects and tunes the summarizer.
type Config struct {
	Type           string
	APIKey         string
	Model          string
	BaseURL        string
	Language       string
	CharacterLimit int
	MaxTokens      int
	Timeout        time.Duration
}

// LoadConfigFromEnv reads SUMMARIZER_TYPE and the matching provider key
// (ANTHROPIC_API_KEY or OPENAI_API_KEY).
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Type:           strings.ToLower(config.GetEnvString("SUMMARIZER_TYPE", TypeNoop)),
		Model:          config.GetEnvString("SUMMARIZER_MODEL", ""),
		BaseURL:        config.GetEnvString("SUMMARIZER_BASE_URL", ""),
		Language:       config.GetEnvString("SUMMARIZER_LANGUAGE", "English"),
		CharacterLimit: config.GetEnvInt("SUMMARIZER_CHAR_LIMIT", 600),
		MaxTokens:      config.GetEnvInt("SUMMARIZER_MAX_TOKENS", 1024),
		Timeout:        config.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
	switch cfg.Type {
	case TypeClaude:
		cfg.APIKey = config.GetEnvString("ANTHROPIC_API_KEY", "")
	case TypeOpenAI:
		cfg.APIKey = config.GetEnvString("OPENAI_API_KEY", "")
	}
	return cfg, cfg.Validate()
}

// ValidateCharacterLimit keeps summaries between 100 and 5000 characters.
func ValidateCharacterLimit(limit int) error {
	if limit < minCharLimit {
		return fmt.Errorf("character limit %d is below minimum %d", limit, minCharLimit)
	}
	if limit > maxCharLimit {
		return fmt.Errorf("character limit %d exceeds maximum %d", limit, maxCharLimit)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Type {
	case TypeNoop:
	case TypeClaude, TypeOpenAI:
		if c.APIKey == "" {
			errs = append(errs, fmt.Errorf("%s summarizer requires an API key", c.Type))
		}
		if c.MaxTokens <= 0 {
			errs = append(errs, fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens))
		}
		if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("timeout: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown summarizer type %q", c.Type))
	}
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
