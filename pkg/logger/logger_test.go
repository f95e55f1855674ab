package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/pkg/logger"
)

func TestLogger_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf}).Named("staff_session")

	l.Warn().Str("reason", "expirado").Msg("credencial rechazada")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "staff_session", line["component"])
	assert.Equal(t, "expirado", line["reason"])
}

func TestLogger_NivelInvalido_UsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "ruidoso", Output: &buf})

	l.Debug().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	l.Info().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}
