package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"chatrelay/internal/config"
	"chatrelay/internal/logging"
	"chatrelay/internal/media/transcode"
	"chatrelay/internal/server"
	"chatrelay/internal/services/gemini"
	"chatrelay/internal/services/groq"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the relay HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			return runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", filepath.Join(cfg.Paths.LogDir, "chatrelay.log")},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.StagingDir, "chatrelay.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return errors.New("another chatrelay instance is already running")
	}
	defer lock.Unlock() //nolint:errcheck

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logDependencySnapshot(logger, cfg)

	groqClient := groq.NewClient(groq.Config{
		APIKey:         cfg.Groq.APIKey,
		BaseURL:        cfg.Groq.BaseURL,
		TimeoutSeconds: cfg.Groq.TimeoutSeconds,
	})
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:         cfg.Gemini.APIKey,
		BaseURL:        cfg.Gemini.BaseURL,
		Model:          cfg.Gemini.Model,
		TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
	})

	srv, err := server.New(cfg, server.Services{
		Chat:       groqClient,
		Vision:     geminiClient,
		Speech:     groqClient,
		Transcoder: transcode.NewConverter(cfg.FFmpegBinary()),
	}, logger)
	if err != nil {
		return err
	}
	if err := srv.Start(signalCtx); err != nil {
		return err
	}

	<-signalCtx.Done()
	logger.Info("chatrelay shutting down")
	srv.Stop()
	return nil
}

func logDependencySnapshot(logger *slog.Logger, cfg *config.Config) {
	logger.Info("dependency snapshot",
		logging.Bool("groq_key_present", strings.TrimSpace(cfg.Groq.APIKey) != ""),
		logging.Bool("gemini_key_present", strings.TrimSpace(cfg.Gemini.APIKey) != ""),
		logging.Bool("ffmpeg_available", binaryAvailable(cfg.FFmpegBinary())),
		logging.String("ffmpeg_binary", cfg.FFmpegBinary()),
	)
}

func binaryAvailable(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}
