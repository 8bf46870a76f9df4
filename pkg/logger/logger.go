package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env     string // development -> consola legible; cualquier otro -> JSON
	Level   string // trace, debug, info, warn, error
	Service string // campo "service" en cada línea
	Out     io.Writer
}

// Logger envuelve zerolog. Los comandos lo usan directo; los componentes
// reciben un zerolog.Logger etiquetado vía Component.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		zctx = zctx.Str("service", cfg.Service)
	}
	l := &Logger{zl: zctx.Logger()}
	log.Logger = l.zl
	return l
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Component devuelve un sublogger con el campo "component" (http, payments...).
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}
