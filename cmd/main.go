package main

import (
	"context"
	"cuisto-web/cmd/config"
	migration "cuisto-web/cmd/database/migrate"
	"cuisto-web/internal/utils"
	"cuisto-web/internal/utils/logging"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configPath string
	log        zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cuisto",
	Short: "Cuisto website API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfig(configPath)
		log = logging.New(logging.Config{
			Level:  utils.GetConfig("LOG_LEVEL"),
			Format: utils.GetConfig("LOG_FORMAT"),
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", utils.DefaultConfigPath, "Path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		var db *gorm.DB
		if config.DatabaseConfigured() {
			var err error
			db, err = config.ConnectDB()
			if err != nil {
				return err
			}
		}

		app, err := config.NewApp(db, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			addr := ":" + utils.GetConfig("APP_PORT")
			log.Info().Str("addr", addr).Msg("server starting")
			errCh <- app.Listen(addr)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and aggregate functions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.DatabaseConfigured() {
			return errors.New("DB_HOST is not configured")
		}
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		if err := migration.Migrate(db, log); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil
	},
}
