package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosk-sales/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.Component("report").Info().Str("report_id", "abc").Msg("reporte generado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "report", line["component"])
	assert.Equal(t, "abc", line["report_id"])
	assert.Equal(t, "reporte generado", line["message"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "WARN", Output: &buf})

	l.Info().Msg("oculto")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "verbose", Output: &buf})

	l.Debug().Msg("debug")
	l.Info().Msg("info")
	assert.NotContains(t, buf.String(), `"debug"`)
	assert.Contains(t, buf.String(), `"info"`)
}
