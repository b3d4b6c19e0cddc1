package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Sagaustus/spyral-translation/config"
	"github.com/Sagaustus/spyral-translation/internal/store"
	"github.com/Sagaustus/spyral-translation/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "spyral-translation",
		Short:         "Translation workflow service for the Voyant string catalogue",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background workers",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	cfgFile string
	version = "dev"
)

func main() {
	slog.SetDefault(log.New(log.Config{}))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(
		serveCmd,
		versionCmd,
		migrateCmd(),
		importCSVCmd(),
		exportLocaleCmd(),
		exportAllCmd(),
		seedLocalesCmd(),
		addUserCmd(),
		assignLocaleCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("command failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the configured logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config: %w", err)
	}
	slog.SetDefault(log.New(cfg.Logger))
	return cfg, nil
}

// openStore loads the configuration and connects to the database.
func openStore(ctx context.Context) (*config.Config, *store.MYSQLStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	return cfg, db, nil
}
