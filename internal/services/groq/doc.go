// Package groq provides a client for the Groq OpenAI-compatible API.
//
// Two endpoints are wrapped: chat completions (used by the chat dispatch
// handler with classifier-selected models and parameters) and Whisper audio
// transcription (used by the speech-to-text handler after ffmpeg
// normalization).
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.Complete: chat completion, returns the first choice's content.
// Client.Transcribe: multipart audio upload, returns the verbose transcript.
//
// The client carries a bounded HTTP timeout and performs no retries; a
// failed call is a final failure for that request.
package groq
