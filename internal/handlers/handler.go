package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/lumichat/lumichat-backend/internal/apperr"
)

func Healthz(c *gin.Context) {
  c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError is the single place service errors become HTTP responses.
func respondError(c *gin.Context, err error) {
  body := gin.H{"error": apperr.Message(err)}
  if details := apperr.DetailsOf(err); details != "" {
    body["details"] = details
  }
  c.JSON(apperr.Status(err), body)
}
