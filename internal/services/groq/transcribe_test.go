package groq

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTranscribeUploadsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-large-v3" {
			t.Fatalf("expected model field, got %q", got)
		}
		if got := r.FormValue("response_format"); got != "verbose_json" {
			t.Fatalf("expected verbose_json format, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "sample.wav" {
			t.Fatalf("unexpected filename %q", header.Filename)
		}
		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatalf("read file part: %v", err)
		}
		if string(data) != "fake-wav-bytes" {
			t.Fatalf("unexpected file contents %q", data)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"text":     "hello world",
			"language": "english",
			"duration": 1.25,
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	result, err := client.Transcribe(context.Background(), TranscriptionRequest{
		File:     strings.NewReader("fake-wav-bytes"),
		Filename: "sample.wav",
		Model:    "whisper-large-v3",
	})
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if result.Text != "hello world" {
		t.Fatalf("expected transcript text, got %q", result.Text)
	}
	if result.Language != "english" || result.Duration != 1.25 {
		t.Fatalf("verbose fields not decoded: %+v", result)
	}
}

func TestTranscribeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "unsupported format"}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL})
	_, err := client.Transcribe(context.Background(), TranscriptionRequest{
		File:  strings.NewReader("bytes"),
		Model: "whisper-large-v3",
	})
	if err == nil {
		t.Fatal("expected error for http 400")
	}
	if !strings.Contains(err.Error(), "http 400") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestTranscribeRequiresFile(t *testing.T) {
	client := NewClient(Config{APIKey: "test"})
	_, err := client.Transcribe(context.Background(), TranscriptionRequest{Model: "whisper-large-v3"})
	if err == nil {
		t.Fatal("expected error without file")
	}
}
