package main

import (
	"os"

	root "github.com/dinerozz/time-format-service/cmd/root"
	"github.com/dinerozz/time-format-service/config"
	"github.com/dinerozz/time-format-service/pkg/logger"
)

func main() {
	config := config.LoadConfig()
	cmd := root.GetRootCmd(config)

	log := logger.Setup(config.Env)

	log.Info().Str("env", config.Env).Msg("starting time format service")

	if len(os.Args) == 1 {
		cmd.SetArgs([]string{"serve"})
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
