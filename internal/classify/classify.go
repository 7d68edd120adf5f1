package classify

import (
	"fmt"
	"strings"

	"chatrelay/internal/language"
)

// Params captures the model selection and generation parameters for a single
// chat request.
type Params struct {
	Model        string
	Temperature  float64
	MaxTokens    int
	TopP         float64
	SystemPrompt string
}

// Models names the general-purpose and coder-specialized model identifiers
// selection chooses between.
type Models struct {
	General string
	Coder   string
}

// Keywords that mark a message as a coding question. Matched as
// case-insensitive substrings.
var codingKeywords = []string{
	"code", "function", "loop", "program", "syntax", "bug", "error",
	"compile", "algorithm", "write",
	"java", "python", "c++", "html", "css", "javascript", "react",
}

// IsCodingQuery reports whether the message reads like a coding question.
// An empty message never matches.
func IsCodingQuery(message string) bool {
	lowered := strings.ToLower(message)
	if lowered == "" {
		return false
	}
	for _, keyword := range codingKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Select chooses a model and generation parameters for the message. Coding
// questions get the coder model with a lower temperature and a larger token
// budget; everything else gets the general model. lang may be a language
// code or name; it is resolved to a display form for the system prompt, and
// an empty value produces an empty directive.
func Select(message, lang string, models Models) Params {
	directive := language.DisplayName(lang)
	if IsCodingQuery(message) {
		return Params{
			Model:        models.Coder,
			Temperature:  0.6,
			MaxTokens:    8192,
			TopP:         0.95,
			SystemPrompt: fmt.Sprintf("You are a helpful AI coding assistant. Respond in language: %s.", directive),
		}
	}
	return Params{
		Model:        models.General,
		Temperature:  1.0,
		MaxTokens:    1024,
		TopP:         0.95,
		SystemPrompt: fmt.Sprintf("You are a helpful multilingual AI assistant. Respond in language: %s.", directive),
	}
}
