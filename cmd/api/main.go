package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/lifeway/lms-backend/internal/pkg/logger"
	"github.com/lifeway/lms-backend/internal/server"
)

func main() {
	// Missing .env is fine; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
