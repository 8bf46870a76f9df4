package http

import (
	"context"
	"errors"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"

	"github.com/jhoicas/cartera-api/internal/application/dto"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
	Log         zerolog.Logger
	// Web tablero estático servido en "/"; nil = sin tablero.
	Web fs.FS
	// SwaggerFile swagger.json para la UI de /docs; vacío = sin UI. Debe existir.
	SwaggerFile string
	// HealthCheck se invoca en GET /health; nil = siempre ok.
	HealthCheck func(ctx context.Context) error
}

// NewApp construye la aplicación Fiber con middlewares, rutas de la API y tablero.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: jsonErrorHandler,
	})

	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(cfg.Log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable", "service": cfg.Name, "error": err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	// Especificación registrada en swag (paquete docs); 404 si no hay ninguna.
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})
	if cfg.SwaggerFile != "" {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    "Cartera API",
		}))
	}

	Router(app, deps)

	// Al final: las rutas de la API tienen prioridad sobre los archivos estáticos.
	if cfg.Web != nil {
		app.Use("/", filesystem.New(filesystem.Config{
			Root:  nethttp.FS(cfg.Web),
			Index: "index.html",
		}))
	}
	return app
}

// jsonErrorHandler responde los errores no manejados (404 de ruta, panics recuperados) como dto.ErrorResponse.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, codeInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		switch {
		case status == fiber.StatusNotFound:
			code = codeNotFound
		case status < fiber.StatusInternalServerError:
			code = codeBadRequest
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
}
