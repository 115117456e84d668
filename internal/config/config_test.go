package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tienda")
	t.Setenv("JWT_SECRET", "shh")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, defaultOrigins, cfg.CORSOrigins)
}

func TestLoad_RequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "shh")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/tienda")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_CORSOriginsOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tienda")
	t.Setenv("JWT_SECRET", "shh")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
