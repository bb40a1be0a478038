package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/lumichat/lumichat-backend/internal/requestdata"
  "github.com/lumichat/lumichat-backend/internal/services"
)

type AuthHandler struct {
  identityService services.IdentityService
}

func NewAuthHandler(identityService services.IdentityService) *AuthHandler {
  return &AuthHandler{identityService: identityService}
}

func (ah *AuthHandler) SignUp(c *gin.Context) {
  var req struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Username string `json:"username,omitempty"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  user, err := ah.identityService.SignUp(c.Request.Context(), req.Email, req.Password, req.Username)
  if err != nil {
    respondError(c, err)
    return
  }
  body := gin.H{"user": user}
  if req.Username != "" {
    body["username"] = req.Username
  }
  c.JSON(http.StatusCreated, body)
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email    string `json:"email"`
    Password string `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  user, session, err := ah.identityService.SignIn(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user, "session": session})
}

func (ah *AuthHandler) Me(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": rd.User})
}
