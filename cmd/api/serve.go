package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/jhoicas/cartera-api/docs"
	"github.com/jhoicas/cartera-api/internal/application/billing"
	"github.com/jhoicas/cartera-api/internal/application/reporting"
	infrapdf "github.com/jhoicas/cartera-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cartera-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cartera-api/internal/interfaces/http"
	"github.com/jhoicas/cartera-api/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			return err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return err
	}
	defer pool.Close()

	runner := postgres.NewConnRunner(pool)
	customerUC := billing.NewCustomerUseCase(runner)
	paymentUC := billing.NewPaymentUseCase(runner, billing.PaymentPolicy{
		RejectOverpayment: cfg.Payments.RejectOverpayment,
	}, log.Component("payments"))
	reportUC := reporting.NewReportUseCase(runner, time.Now)
	pdfUC := reporting.NewPDFUseCase(runner, infrapdf.NewMarotoAgingReportGenerator(), time.Now)

	// La UI de /docs solo se monta si el swagger.json existe en disco.
	swaggerFile := cfg.HTTP.SwaggerFile
	if _, err := os.Stat(swaggerFile); swaggerFile != "" && err != nil {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
		swaggerFile = ""
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log.Component("http"),
		Web:         web.FS(),
		SwaggerFile: swaggerFile,
		HealthCheck: pool.Ping,
	}, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		PaymentUC:  paymentUC,
		ReportUC:   reportUC,
		PDFUC:      pdfUC,
		Metrics:    httpRouter.NewMetrics("cartera"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
