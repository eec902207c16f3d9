package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the webhook tracking tables",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log.Setup(cfg.App.LogLevel, nil)

	conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := migration.Apply(cmd.Context(), conn); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed successfully")
	return nil
}
