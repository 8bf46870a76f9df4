package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cartera-api/internal/infrastructure/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga clientes, facturas y pagos de demostración",
	Long: `Carga datos de demostración con fechas relativas al día actual, de modo que
todas las franjas de antigüedad tengan facturas. Es idempotente.`,
	Example: `  cartera-api seed --migrate`,
	RunE:    runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("migrate", false, "aplicar migraciones antes de cargar los datos")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	if withMigrate, _ := cmd.Flags().GetBool("migrate"); withMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Seed(ctx, pool); err != nil {
		return err
	}
	log.Info().Msg("datos de demostración cargados")
	return nil
}
