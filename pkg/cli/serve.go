package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shelfd/shelfd/internal/store"
	"github.com/shelfd/shelfd/pkg/api"
	"github.com/shelfd/shelfd/pkg/config"
	"github.com/shelfd/shelfd/pkg/logging"
)

var (
	servePort       int
	serveConfigFile string
	serveSeedDir    string
	serveLogLevel   string
	serveLogFormat  string
)

// serveCmd starts the API server. It is also the root command's default.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Example: `  # Start with defaults (port 5000, built-in seed data)
  shelfd serve

  # Start on a custom port with a config file
  shelfd serve --config shelfd.yaml --port 3000

  # Seed the collections from a directory of JSON files
  shelfd serve --seed-dir ./seeds`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	registerServeFlags(serveCmd)
	registerServeFlags(rootCmd)
}

func registerServeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (overrides config file)")
	cmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to configuration file (YAML or JSON)")
	cmd.Flags().StringVar(&serveSeedDir, "seed-dir", "", "Directory with users.json, posts.json, books.json seed files")
	cmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format (text, json)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	seeds, err := store.LoadSeeds(cfg.SeedDir)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}
	users, posts, books := store.NewStores(seeds)

	log.Info("seed data loaded",
		"users", users.Count(),
		"posts", posts.Count(),
		"books", books.Count(),
		"seedDir", cfg.SeedDir,
	)

	server := api.New(cfg.Port, users, posts, books,
		api.WithLogger(log),
		api.WithVersion(version),
	)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	fmt.Printf("shelfd listening on port %d\n", cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutting down...")

	if err := server.Stop(); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// loadServeConfig builds the effective configuration: defaults, then the
// config file if given, then flag overrides.
func loadServeConfig() (*config.Config, error) {
	cfg := config.Default()
	if serveConfigFile != "" {
		loaded, err := config.Load(serveConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveSeedDir != "" {
		cfg.SeedDir = serveSeedDir
	}
	if serveLogLevel != "" {
		cfg.LogLevel = serveLogLevel
	}
	if serveLogFormat != "" {
		cfg.LogFormat = serveLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
