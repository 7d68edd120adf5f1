package config

const (
	defaultStagingDir         = "~/.local/share/chatrelay/staging"
	defaultPublicDir          = "public"
	defaultLogDir             = "~/.local/share/chatrelay/logs"
	defaultBind               = ":5000"
	defaultGroqBaseURL        = "https://api.groq.com/openai/v1"
	defaultChatModel          = "llama-3.3-70b-versatile"
	defaultCoderModel         = "qwen-2.5-coder-32b"
	defaultWhisperModel       = "whisper-large-v3"
	defaultGroqTimeoutSeconds = 60
	defaultGeminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel        = "gemini-2.0-flash"
	defaultGeminiTimeout      = 60
	defaultLogFormat          = "auto"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StagingDir: defaultStagingDir,
			PublicDir:  defaultPublicDir,
			LogDir:     defaultLogDir,
			Bind:       defaultBind,
		},
		Groq: Groq{
			BaseURL:        defaultGroqBaseURL,
			ChatModel:      defaultChatModel,
			CoderModel:     defaultCoderModel,
			WhisperModel:   defaultWhisperModel,
			TimeoutSeconds: defaultGroqTimeoutSeconds,
		},
		Gemini: Gemini{
			BaseURL:        defaultGeminiBaseURL,
			Model:          defaultGeminiModel,
			TimeoutSeconds: defaultGeminiTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
