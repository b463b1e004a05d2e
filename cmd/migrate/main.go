package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/momhive/momhive/internal/db"
	"github.com/momhive/momhive/internal/logger"
	"github.com/spf13/cobra"
)

type dbFlags struct {
	driver     string
	connection string
}

func main() {
	flags := &dbFlags{}

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations for MomHive",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Options{Service: "migrate", Dev: true})
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.driver, "driver", envOr("DB_DRIVER", "sqlite"), "database driver (sqlite or pgx)")
	rootCmd.PersistentFlags().StringVar(&flags.connection, "db", envOr("DB_CONNECTION", "./data/mom_hive.db?_pragma=foreign_keys(1)"), "database connection string")

	rootCmd.AddCommand(upCmd(flags))
	rootCmd.AddCommand(downCmd(flags))
	rootCmd.AddCommand(statusCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func upCmd(flags *dbFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Init(flags.driver, flags.connection)
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.RunMigrations(database.DB, flags.driver)
			if err != nil {
				return err
			}
			slog.Info("migrations applied")
			return nil
		},
	}
}

func downCmd(flags *dbFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Init(flags.driver, flags.connection)
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.MigrateDown(database.DB, flags.driver)
			if err != nil {
				return err
			}
			slog.Info("rolled back one migration")
			return nil
		},
	}
}

func statusCmd(flags *dbFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Init(flags.driver, flags.connection)
			if err != nil {
				return err
			}
			defer database.Close()

			version, err := db.Version(database.DB, flags.driver)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
			return nil
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
