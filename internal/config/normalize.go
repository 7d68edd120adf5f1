package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGroq()
	c.normalizeGemini()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.PublicDir) != "" {
		if c.Paths.PublicDir, err = expandPath(c.Paths.PublicDir); err != nil {
			return fmt.Errorf("paths.public_dir: %w", err)
		}
	}

	c.Paths.Bind = strings.TrimSpace(c.Paths.Bind)
	if c.Paths.Bind == "" || c.Paths.Bind == defaultBind {
		if port, ok := os.LookupEnv("PORT"); ok && strings.TrimSpace(port) != "" {
			c.Paths.Bind = ":" + strings.TrimSpace(port)
		}
	}
	if c.Paths.Bind == "" {
		c.Paths.Bind = defaultBind
	}
	return nil
}

func (c *Config) normalizeGroq() {
	c.Groq.APIKey = strings.TrimSpace(c.Groq.APIKey)
	if c.Groq.APIKey == "" {
		if value, ok := os.LookupEnv("GROQ_API_KEY"); ok {
			c.Groq.APIKey = strings.TrimSpace(value)
		}
	}
	c.Groq.BaseURL = strings.TrimSpace(c.Groq.BaseURL)
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = defaultGroqBaseURL
	}
	if strings.TrimSpace(c.Groq.ChatModel) == "" {
		c.Groq.ChatModel = defaultChatModel
	}
	if strings.TrimSpace(c.Groq.CoderModel) == "" {
		c.Groq.CoderModel = defaultCoderModel
	}
	if strings.TrimSpace(c.Groq.WhisperModel) == "" {
		c.Groq.WhisperModel = defaultWhisperModel
	}
	if c.Groq.TimeoutSeconds <= 0 {
		c.Groq.TimeoutSeconds = defaultGroqTimeoutSeconds
	}
}

func (c *Config) normalizeGemini() {
	c.Gemini.APIKey = strings.TrimSpace(c.Gemini.APIKey)
	if c.Gemini.APIKey == "" {
		if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.Gemini.APIKey = strings.TrimSpace(value)
		}
	}
	c.Gemini.BaseURL = strings.TrimSpace(c.Gemini.BaseURL)
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = defaultGeminiBaseURL
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		c.Gemini.Model = defaultGeminiModel
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = defaultGeminiTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
