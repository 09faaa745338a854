package root

import (
	"github.com/dinerozz/time-format-service/config"
	"github.com/dinerozz/time-format-service/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "time-format-service",
	Short: "Time formatting microservice",
}

func GetRootCmd(config *config.Config) *cobra.Command {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config)
		},
	})

	return rootCmd
}
