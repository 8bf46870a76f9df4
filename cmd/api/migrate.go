package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/cartera-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes del esquema",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			return err
		}
		log.Info().Msg("migraciones aplicadas")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
