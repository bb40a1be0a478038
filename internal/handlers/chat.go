package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/lumichat/lumichat-backend/internal/requestdata"
  "github.com/lumichat/lumichat-backend/internal/services"
)

type ChatHandler struct {
  chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
  return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) Chat(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }
  var req struct {
    Prompt         string `json:"prompt"`
    ConversationID string `json:"conversationId,omitempty"`
    Title          string `json:"title,omitempty"`
    Model          string `json:"model,omitempty"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  chatReq := services.ChatRequest{
    UserID: rd.User.ID,
    Prompt: req.Prompt,
    Title:  req.Title,
    Model:  req.Model,
  }
  if req.ConversationID != "" {
    id, err := uuid.Parse(req.ConversationID)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversationId"})
      return
    }
    chatReq.ConversationID = &id
  }
  result, err := ch.chatService.Chat(c.Request.Context(), chatReq)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, result)
}
