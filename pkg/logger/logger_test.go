package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNew_ProductionEscribeJSONConServicio(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Service: "cartera-api", Out: &buf})

	l.Info().Msg("oculto")
	l.Warn().Int64("invoice_id", 7).Msg("sobrepago")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "cartera-api", entry["service"])
	assert.Equal(t, "sobrepago", entry["message"])
	assert.EqualValues(t, 7, entry["invoice_id"])
	assert.NotContains(t, buf.String(), "oculto")
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Service: "cartera-api", Out: &buf})

	payments := l.Component("payments")
	payments.Info().Msg("pago registrado")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "payments", entry["component"])
	assert.Equal(t, "cartera-api", entry["service"])
}
