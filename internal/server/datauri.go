package server

import (
	"regexp"
	"strings"
)

const fallbackImageMIME = "image/jpeg"

var imageDataURIPattern = regexp.MustCompile(`^data:(image/[A-Za-z0-9.+-]+);base64`)

// splitImageDataURI separates a data URI into its base64 payload and MIME
// type. The payload is everything after the first comma (or the whole input
// when no comma is present); an unrecognizable header falls back to
// image/jpeg.
func splitImageDataURI(raw string) (payload, mimeType string) {
	payload = raw
	if idx := strings.Index(raw, ","); idx >= 0 {
		payload = raw[idx+1:]
	}
	mimeType = fallbackImageMIME
	if match := imageDataURIPattern.FindStringSubmatch(raw); match != nil {
		mimeType = match[1]
	}
	return payload, mimeType
}
