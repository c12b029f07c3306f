package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simplyaiforall-coder/simplyAiForAll/internal/cli"
	"github.com/simplyaiforall-coder/simplyAiForAll/internal/config"
	internal_http "github.com/simplyaiforall-coder/simplyAiForAll/internal/http"
	"github.com/simplyaiforall-coder/simplyAiForAll/internal/log"
	internal_storage "github.com/simplyaiforall-coder/simplyAiForAll/internal/storage"
)

var rootCmd = &cobra.Command{Use: "simplyai"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.GetLogger().Errorf("Failed to load configuration: %v", err)
			os.Exit(1)
		}
		connStr := cfg.ConnString()
		if connStr == "" {
			fmt.Fprintln(os.Stderr, "Error: DATABASE_URL or DB_* env vars required")
			os.Exit(1)
		}
		store, err := internal_storage.InitStore(connStr)
		if err != nil {
			log.GetLogger().Errorf("Failed to initialize store: %v", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := internal_http.StartServer(cfg.HTTPPort, store); err != nil {
			log.GetLogger().Errorf("Server stopped: %v", err)
			os.Exit(1)
		}
	},
}

func main() {
	cli.SetupCLI(rootCmd)
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
