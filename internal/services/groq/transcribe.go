package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// TranscriptionRequest describes one Whisper transcription call. File is
// streamed into the multipart body; Filename carries the extension the API
// uses to sniff the container format.
type TranscriptionRequest struct {
	File     io.Reader
	Filename string
	Model    string
}

// Transcription is the verbose transcription result.
type Transcription struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Error    *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Transcribe uploads audio to the transcription endpoint and returns the
// structured verbose_json result.
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (Transcription, error) {
	var empty Transcription
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return empty, errors.New("groq transcribe: api key required")
	}
	if req.File == nil {
		return empty, errors.New("groq transcribe: file required")
	}
	if strings.TrimSpace(req.Model) == "" {
		return empty, errors.New("groq transcribe: model required")
	}
	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = "audio.wav"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return empty, fmt.Errorf("groq transcribe: create form file: %w", err)
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return empty, fmt.Errorf("groq transcribe: write audio: %w", err)
	}
	if err := writer.WriteField("model", req.Model); err != nil {
		return empty, fmt.Errorf("groq transcribe: write model field: %w", err)
	}
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return empty, fmt.Errorf("groq transcribe: write format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return empty, fmt.Errorf("groq transcribe: finalize body: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/audio/transcriptions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return empty, fmt.Errorf("groq transcribe: new request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return empty, fmt.Errorf("groq transcribe: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, fmt.Errorf("groq transcribe: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return empty, &httpStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Transcription
	if err := json.Unmarshal(body, &result); err != nil {
		return empty, fmt.Errorf("groq transcribe: decode response: %w", err)
	}
	if result.Error != nil {
		return empty, fmt.Errorf("groq transcribe: api error: %s", strings.TrimSpace(result.Error.Message))
	}
	return result, nil
}
