package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cartera-api/pkg/config"
	"github.com/jhoicas/cartera-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cartera-api",
	Short: "API de cartera: facturas por antigüedad, KPIs, pagos y top de deudores",
	Long: `cartera-api expone el reporte de cuentas por cobrar sobre PostgreSQL.

Sin subcomando arranca el servidor HTTP (equivale a "serve").

Variables de entorno principales:
  DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME
  HTTP_HOST, HTTP_PORT, LOG_LEVEL, DB_AUTO_MIGRATE, PAYMENTS_REJECT_OVERPAYMENT`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute ejecuta el comando raíz; sale con código 1 si falla.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap carga la configuración y construye el logger, común a todos los subcomandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	return cfg, log, nil
}
