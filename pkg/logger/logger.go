package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Setup configures the process-wide zerolog logger. Local gets a human
// console writer; dev and prod emit JSON, prod at info level.
func Setup(env string) zerolog.Logger {
	var logger zerolog.Logger

	switch env {
	case envLocal:
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			Level(zerolog.DebugLevel)
	case envDev:
		logger = zerolog.New(os.Stdout).Level(zerolog.DebugLevel)
	default:
		logger = zerolog.New(os.Stdout).Level(zerolog.InfoLevel)
	}

	logger = logger.With().Timestamp().Logger()
	log.Logger = logger

	return logger
}
