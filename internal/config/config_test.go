package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/softcare", cfg.MongoURI)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadAllowedOriginsFromEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := Load()
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}

func TestLoadFrontendURLFallback(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://app.example.com")

	cfg := Load()
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "Production")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"a", "b"}, parseOrigins("a, ,b,"))
}
