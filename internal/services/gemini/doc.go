// Package gemini provides a client for the Google Gemini generateContent
// API, used by the vision dispatch handler to describe inline base64 images.
package gemini
