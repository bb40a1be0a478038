package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/lumichat/lumichat-backend/internal/requestdata"
  "github.com/lumichat/lumichat-backend/internal/services"
)

type ConversationHandler struct {
  conversationService services.ConversationService
}

func NewConversationHandler(conversationService services.ConversationService) *ConversationHandler {
  return &ConversationHandler{conversationService: conversationService}
}

func (ch *ConversationHandler) ListMyConversations(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }
  conversations, err := ch.conversationService.ListForUser(c.Request.Context(), rd.User.ID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}
