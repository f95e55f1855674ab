package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/pkg/config"
)

func TestLoad_SinJWTSecret_RetornaError(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrMissingJWTSecret)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_SinAPPENV_NoEsDesarrollo(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("APP_ENV", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.IsDevelopment(), "sin APP_ENV la cookie de sesión debe salir con Secure")
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_PORT", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5432, cfg.DB.Port, "valor inválido cae al default")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss:word", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%3Aword@db:5432/tienda?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
