package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codegirl-007/kiddos-api/internal/database"
	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Bring the database schema up to date.

This command connects to the configured database and applies the
schema for channels, videos, cache entries and settings. It is safe to
run repeatedly; existing tables are altered in place.`,
	RunE: runMigrate,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("Database schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")

	tables := []interface{}{
		&models.Channel{},
		&models.Video{},
		&models.ChannelCacheEntry{},
		&models.Setting{},
	}
	migrator := db.DB.Migrator()
	for _, table := range tables {
		state := "missing"
		if migrator.HasTable(table) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-22s %s\n", fmt.Sprintf("%T", table), state)
	}

	return nil
}
