package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("PGSQL_URL", "postgres://localhost/pfa")
	v.Set("JWT_EXPIRY_DURATION", "not-a-duration")
	v.Set("CORS_ALLOWED_ORIGINS", "http://a.example http://b.example")

	cfg := fromViper(v)

	assert.Equal(t, "postgres://localhost/pfa", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.RedisAddr)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("JWT_EXPIRY_DURATION", "15m")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("REDIS_DB", 2)
	v.Set("IS_PRODUCTION", true)

	cfg := fromViper(v)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.IsProduction)
}
