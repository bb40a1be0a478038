package middleware

import (
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"

  "github.com/lumichat/lumichat-backend/internal/apperr"
  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/requestdata"
  "github.com/lumichat/lumichat-backend/internal/services"
)

type AuthMiddleware struct {
  log             *logger.Logger
  identityService services.IdentityService
}

func NewAuthMiddleware(log *logger.Logger, identityService services.IdentityService) *AuthMiddleware {
  middlewareLog := log.With("Middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLog, identityService: identityService}
}

// RequireAuth is a pure gate: it resolves the bearer token to a user and
// attaches it to the request context, or aborts. No retries, no side effects
// beyond the context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString, ok := extractBearerToken(c)
    if !ok {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
      return
    }
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
      return
    }
    user, err := am.identityService.UserFromToken(c.Request.Context(), tokenString)
    if err != nil {
      if apperr.KindOf(err) == apperr.KindUnauthenticated {
        body := gin.H{"error": "invalid or expired token"}
        if details := apperr.DetailsOf(err); details != "" {
          body["details"] = details
        }
        c.AbortWithStatusJSON(http.StatusUnauthorized, body)
        return
      }
      am.log.Error("auth middleware failure", "error", err)
      c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth middleware failure", "details": err.Error()})
      return
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
      TokenString: tokenString,
      User:        user,
    })
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

func extractBearerToken(c *gin.Context) (string, bool) {
  authHeader := c.GetHeader("Authorization")
  if authHeader == "" {
    return "", false
  }
  if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
    return "", false
  }
  return strings.TrimSpace(authHeader[7:]), true
}
