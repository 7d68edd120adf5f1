package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"chatrelay/internal/config"
	"chatrelay/internal/logging"
	"chatrelay/internal/services/gemini"
	"chatrelay/internal/services/groq"
)

// ChatService produces a chat completion for the supplied request.
type ChatService interface {
	Complete(ctx context.Context, req groq.ChatRequest) (string, error)
}

// VisionService produces a description for an inline image.
type VisionService interface {
	Describe(ctx context.Context, req gemini.VisionRequest) (string, error)
}

// SpeechService transcribes an audio stream.
type SpeechService interface {
	Transcribe(ctx context.Context, req groq.TranscriptionRequest) (groq.Transcription, error)
}

// Transcoder normalizes an uploaded audio file for transcription.
type Transcoder interface {
	OutputPath(src string) string
	Convert(ctx context.Context, src, dst string) error
}

// Services bundles the provider adapters the dispatch handlers delegate to.
type Services struct {
	Chat       ChatService
	Vision     VisionService
	Speech     SpeechService
	Transcoder Transcoder
}

// Server exposes the relay's HTTP surface: the three dispatch endpoints and
// optional static assets.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	services Services

	listener net.Listener
	server   *http.Server
}

// New constructs a server bound to the configured address.
func New(cfg *config.Config, services Services, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	srv := &Server{
		cfg:      cfg,
		logger:   logger,
		services: services,
	}
	srv.server = &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler builds the routing tree with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/vision", s.handleVision)
	mux.HandleFunc("/api/stt", s.handleSpeechToText)
	if dir := strings.TrimSpace(s.cfg.Paths.PublicDir); dir != "" {
		mux.Handle("/", http.FileServer(http.Dir(dir)))
	}
	return s.withAccessLog(withCORS(mux))
}

// Start begins serving on the configured bind address. The server shuts
// down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Paths.Bind)
	if err != nil {
		return fmt.Errorf("server listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) log() *slog.Logger {
	return logging.WithComponent(s.logger, "server")
}
