package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IshanviChauhan/Interview-Bot/internal/config"
	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
	"github.com/IshanviChauhan/Interview-Bot/internal/logger"
	"github.com/IshanviChauhan/Interview-Bot/internal/server"
	"github.com/IshanviChauhan/Interview-Bot/internal/store"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the interview HTTP API server",
	Long: `Starts an HTTP server exposing interview sessions over a REST API.

Required environment variables:
  GEMINI_API_KEY     Gemini API key
  JWT_SECRET         secret for signing auth tokens
  API_USERNAME       operator login username
  API_PASSWORD_HASH  bcrypt hash of the operator password`,
	RunE: runServeCmd,
}

var (
	serveAddr        string
	serveSessionsDir string
	serveQuestions   int
	serveEnv         string
)

func init() {
	serveCommand.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCommand.Flags().StringVar(&serveSessionsDir, "sessions-dir", "interview_sessions", "Directory for saved session JSON files")
	serveCommand.Flags().IntVar(&serveQuestions, "questions", config.DefaultQuestionCount, "Default number of questions per session")
	serveCommand.Flags().StringVar(&serveEnv, "env", "prod", "Environment: dev or prod (controls log output)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log, err := logger.NewLogger(serveEnv)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fileStore, err := store.NewFileStore(serveSessionsDir, log)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:                 serveAddr,
		DefaultQuestionCount: serveQuestions,
	}, client, fileStore, log)
	if err != nil {
		return err
	}

	return srv.Start()
}
