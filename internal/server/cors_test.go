package server

import (
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "github.com/lumichat/lumichat-backend/internal/logger"
)

func TestBuildCorsConfig_Defaults(t *testing.T) {
  cfg := BuildCorsConfig(logger.NewNop())
  require.False(t, cfg.AllowAllOrigins)
  require.Equal(t, []string{"http://localhost:5173"}, cfg.AllowOrigins)
  require.True(t, cfg.AllowCredentials)
  require.Contains(t, cfg.AllowHeaders, "Authorization")
  require.Equal(t, 600*time.Second, cfg.MaxAge)
}

func TestBuildCorsConfig_OriginList(t *testing.T) {
  t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
  t.Setenv("CORS_ALLOW_HEADERS", "X-Request-Id")
  t.Setenv("CORS_MAX_AGE", "120")

  cfg := BuildCorsConfig(logger.NewNop())
  require.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowOrigins)
  require.Contains(t, cfg.AllowHeaders, "X-Request-Id")
  require.Equal(t, 120*time.Second, cfg.MaxAge)
}

func TestBuildCorsConfig_WildcardForcesCredentialsOff(t *testing.T) {
  t.Setenv("CORS_ORIGINS", "*")
  t.Setenv("CORS_CREDENTIALS", "true")

  cfg := BuildCorsConfig(logger.NewNop())
  require.True(t, cfg.AllowAllOrigins)
  require.Empty(t, cfg.AllowOrigins)
  require.False(t, cfg.AllowCredentials)
}
