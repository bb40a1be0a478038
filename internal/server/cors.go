package server

import (
  "time"

  "github.com/gin-contrib/cors"

  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/utils"
)

// BuildCorsConfig assembles the cross-origin policy from environment
// variables:
//
//   CORS_ORIGINS         Comma-separated allow list ("*" for wildcard)
//   FRONTEND_URL         Single allowed origin, fallback when CORS_ORIGINS unset
//   CORS_ALLOW_HEADERS   Extra comma-separated request headers to allow
//   CORS_EXPOSE_HEADERS  Response headers to expose
//   CORS_MAX_AGE         Preflight cache seconds (default 600)
//   CORS_CREDENTIALS     "true" to allow credentials (default true)
//
// A wildcard origin forces credentials off; browsers reject the combination.
func BuildCorsConfig(log *logger.Logger) cors.Config {
  fallback := utils.GetEnv("FRONTEND_URL", "http://localhost:5173", log)
  origins := utils.GetEnvAsSlice("CORS_ORIGINS", []string{fallback}, log)

  wildcard := false
  for _, o := range origins {
    if o == "*" {
      wildcard = true
      break
    }
  }

  allowCredentials := utils.GetEnvAsBool("CORS_CREDENTIALS", true, log)
  if wildcard {
    allowCredentials = false
  }

  allowHeaders := append([]string{"Content-Type", "Authorization"}, utils.GetEnvAsSlice("CORS_ALLOW_HEADERS", nil, log)...)
  exposeHeaders := utils.GetEnvAsSlice("CORS_EXPOSE_HEADERS", nil, log)
  maxAge := utils.GetEnvAsInt("CORS_MAX_AGE", 600, log)

  cfg := cors.Config{
    AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
    AllowHeaders:     allowHeaders,
    ExposeHeaders:    exposeHeaders,
    AllowCredentials: allowCredentials,
    MaxAge:           time.Duration(maxAge) * time.Second,
  }
  if wildcard {
    cfg.AllowAllOrigins = true
  } else {
    cfg.AllowOrigins = origins
  }
  return cfg
}
