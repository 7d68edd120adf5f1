package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"chatrelay/internal/classify"
	"chatrelay/internal/fileutil"
	"chatrelay/internal/logging"
	"chatrelay/internal/services/gemini"
	"chatrelay/internal/services/groq"
)

const (
	// maxJSONBody caps JSON request bodies at 10 MB.
	maxJSONBody = 10 << 20
	// maxUploadMemory is the multipart in-memory threshold; larger uploads
	// spill to disk.
	maxUploadMemory = 25 << 20

	defaultVisionPrompt = "Describe this image."

	errChatFailed          = "Chat failed"
	errNoImage             = "No image provided."
	errVisionFailed        = "Gemini Vision processing failed"
	errNoAudio             = "No audio file provided."
	errTranscriptionFailed = "Transcription failed"
)

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type visionRequest struct {
	Base64Image string `json:"base64Image"`
	Message     string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req chatRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	params := classify.Select(req.Message, req.Language, classify.Models{
		General: s.cfg.Groq.ChatModel,
		Coder:   s.cfg.Groq.CoderModel,
	})

	reply, err := s.services.Chat.Complete(r.Context(), groq.ChatRequest{
		Model: params.Model,
		Messages: []groq.Message{
			{Role: "system", Content: params.SystemPrompt},
			{Role: "user", Content: req.Message},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		TopP:        params.TopP,
	})
	if err != nil {
		s.log().Error("chat completion failed",
			logging.String("model", params.Model),
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, errChatFailed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleVision(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req visionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Base64Image) == "" {
		s.writeError(w, http.StatusBadRequest, errNoImage)
		return
	}

	prompt := strings.TrimSpace(req.Message)
	if prompt == "" {
		prompt = defaultVisionPrompt
	}
	payload, mimeType := splitImageDataURI(req.Base64Image)

	reply, err := s.services.Vision.Describe(r.Context(), gemini.VisionRequest{
		Prompt:   prompt,
		MIMEType: mimeType,
		Data:     payload,
	})
	if err != nil {
		s.log().Error("vision request failed",
			logging.String("mime_type", mimeType),
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, errVisionFailed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleSpeechToText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.writeError(w, http.StatusBadRequest, errNoAudio)
		return
	}
	upload, header, err := r.FormFile("audio")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errNoAudio)
		return
	}
	defer upload.Close()

	uploadPath := filepath.Join(s.cfg.Paths.StagingDir, uuid.NewString()+uploadExtension(header.Filename))
	if err := fileutil.WriteStream(uploadPath, upload); err != nil {
		s.log().Error("persist upload failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, errTranscriptionFailed)
		return
	}
	convertedPath := s.services.Transcoder.OutputPath(uploadPath)

	// Both temp files are owned by this invocation and removed on every
	// exit path. A file the transcoder never produced is not an error.
	defer func() {
		for _, path := range []string{uploadPath, convertedPath} {
			if err := fileutil.RemoveIfExists(path); err != nil {
				s.log().Warn("temp file cleanup failed",
					logging.String("path", path),
					logging.Error(err),
				)
			}
		}
	}()

	if err := s.services.Transcoder.Convert(r.Context(), uploadPath, convertedPath); err != nil {
		s.log().Error("audio conversion failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, errTranscriptionFailed)
		return
	}

	converted, err := os.Open(convertedPath)
	if err != nil {
		s.log().Error("open converted audio failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, errTranscriptionFailed)
		return
	}
	defer converted.Close()

	result, err := s.services.Speech.Transcribe(r.Context(), groq.TranscriptionRequest{
		File:     converted,
		Filename: filepath.Base(convertedPath),
		Model:    s.cfg.Groq.WhisperModel,
	})
	if err != nil {
		s.log().Error("transcription failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, errTranscriptionFailed)
		return
	}

	s.log().Debug("transcription complete",
		logging.String("language", result.Language),
		logging.Float64("duration_seconds", result.Duration),
	)
	s.writeJSON(w, http.StatusOK, map[string]string{"text": result.Text})
}

// decodeJSON reads a size-limited JSON body into dst, answering 400 on
// malformed input. An empty body leaves dst zero-valued and is tolerated.
// Reports whether the handler may proceed.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	s.writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// uploadExtension returns a sanitized extension from the client-supplied
// filename; the extension only serves as a container hint for ffmpeg.
func uploadExtension(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if len(ext) > 8 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
