package services

import (
  "context"
  "errors"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/lumichat/lumichat-backend/internal/apperr"
  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/repos"
  "github.com/lumichat/lumichat-backend/internal/types"
)

type ChatRequest struct {
  UserID         uuid.UUID
  Prompt         string
  ConversationID *uuid.UUID
  Title          string
  Model          string
}

type ChatResult struct {
  ConversationID     uuid.UUID              `json:"conversationId"`
  UserMessageID      uuid.UUID              `json:"userMessageId"`
  AssistantMessageID *uuid.UUID             `json:"assistantMessageId,omitempty"`
  AssistantContent   string                 `json:"assistantContent,omitempty"`
  ModelUsed          string                 `json:"modelUsed,omitempty"`
  AIUnavailable      bool                   `json:"aiUnavailable,omitempty"`
  Metadata           map[string]interface{} `json:"metadata,omitempty"`
}

type ChatService interface {
  Chat(ctx context.Context, req ChatRequest) (*ChatResult, error)
}

type chatService struct {
  db               *gorm.DB
  log              *logger.Logger
  conversationRepo repos.ConversationRepo
  messageRepo      repos.MessageRepo
  gemini           GeminiService
  historyLimit     int
}

func NewChatService(
  db *gorm.DB,
  log *logger.Logger,
  conversationRepo repos.ConversationRepo,
  messageRepo repos.MessageRepo,
  gemini GeminiService,
  historyLimit int,
) ChatService {
  if historyLimit <= 0 || historyLimit > 100 {
    historyLimit = 20
  }
  serviceLog := log.With("service", "ChatService")
  return &chatService{
    db:               db,
    log:              serviceLog,
    conversationRepo: conversationRepo,
    messageRepo:      messageRepo,
    gemini:           gemini,
    historyLimit:     historyLimit,
  }
}

// Chat runs the full authenticated chat flow: resolve or create the
// conversation, persist the inbound message, then best-effort generation. The
// inbound message is written before any provider call and is never rolled
// back when generation fails.
func (cs *chatService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
  if strings.TrimSpace(req.Prompt) == "" {
    return nil, apperr.Validation("prompt required")
  }

  conversationID, err := cs.ensureConversation(ctx, req)
  if err != nil {
    return nil, err
  }

  userMsg, err := cs.messageRepo.Create(ctx, nil, &types.Message{
    ConversationID: conversationID,
    Role:           types.RoleUser,
    Content:        req.Prompt,
    SenderID:       &req.UserID,
  })
  if err != nil {
    return nil, apperr.Internal("failed to insert message", err.Error())
  }

  if !cs.gemini.Available() {
    cs.log.Warn("generative-text provider unavailable; returning degraded chat result", "conversationID", conversationID)
    return &ChatResult{
      ConversationID: conversationID,
      UserMessageID:  userMsg.ID,
      AIUnavailable:  true,
    }, nil
  }

  prompt, err := cs.buildPrompt(ctx, conversationID, userMsg.ID, req.Prompt)
  if err != nil {
    return nil, err
  }

  modelName := req.Model
  if modelName == "" {
    modelName = cs.gemini.DefaultModel()
  }

  generated, err := cs.gemini.Generate(ctx, modelName, prompt)
  if err != nil {
    // The user message stays committed; only the assistant turn is lost.
    return nil, apperr.Upstream("ai generation failed", err.Error())
  }

  metadata := map[string]interface{}{"model": modelName}
  if generated.FinishReason != "" {
    metadata["finishReason"] = generated.FinishReason
  }
  if len(generated.Safety) > 0 {
    metadata["safety"] = generated.Safety
  }

  assistantText := generated.Text
  if assistantText == "" {
    assistantText = "[No content returned by model]"
    if generated.FinishReason != "" {
      assistantText += " (finishReason: " + generated.FinishReason + ")"
    }
    cs.log.Warn("empty assistant text from provider", "finishReason", generated.FinishReason)
  }

  assistantMsg, err := cs.messageRepo.Create(ctx, nil, &types.Message{
    ConversationID: conversationID,
    Role:           types.RoleAssistant,
    Content:        assistantText,
    Metadata:       datatypes.JSONMap(metadata),
  })
  if err != nil {
    return nil, apperr.Internal("failed to insert message", err.Error())
  }

  return &ChatResult{
    ConversationID:     conversationID,
    UserMessageID:      userMsg.ID,
    AssistantMessageID: &assistantMsg.ID,
    AssistantContent:   assistantText,
    ModelUsed:          modelName,
    Metadata:           metadata,
  }, nil
}

// ensureConversation reuses the supplied conversation after an ownership
// check, or lazily creates one. Either way it settles before any message row
// is written.
func (cs *chatService) ensureConversation(ctx context.Context, req ChatRequest) (uuid.UUID, error) {
  if req.ConversationID != nil {
    conversation, err := cs.conversationRepo.GetByID(ctx, nil, *req.ConversationID)
    if err != nil {
      if errors.Is(err, gorm.ErrRecordNotFound) {
        return uuid.Nil, apperr.NotFound("conversation not found")
      }
      return uuid.Nil, apperr.Internal("failed to fetch conversation", err.Error())
    }
    if conversation.CreatedBy != req.UserID {
      return uuid.Nil, apperr.Forbidden("forbidden")
    }
    return conversation.ID, nil
  }

  title := req.Title
  if title == "" {
    title = "Chat: " + time.Now().UTC().Format("2006-01-02")
  }
  conversation, err := cs.conversationRepo.Create(ctx, nil, &types.Conversation{
    Title:     &title,
    CreatedBy: req.UserID,
  })
  if err != nil {
    return uuid.Nil, apperr.Internal("failed to create conversation", err.Error())
  }
  return conversation.ID, nil
}

// buildPrompt renders the most recent history oldest-to-newest as
// "ROLE: content" lines and appends the current prompt as the final USER
// line. The just-persisted inbound message is skipped so the prompt appears
// exactly once.
func (cs *chatService) buildPrompt(ctx context.Context, conversationID, userMessageID uuid.UUID, prompt string) (string, error) {
  recent, err := cs.messageRepo.ListRecent(ctx, nil, conversationID, cs.historyLimit, false)
  if err != nil {
    return "", apperr.Internal("failed to load history", err.Error())
  }

  lines := make([]string, 0, len(recent)+1)
  // recent is newest-first; walk it backwards for chronological order.
  for i := len(recent) - 1; i >= 0; i-- {
    m := recent[i]
    if m.ID == userMessageID {
      continue
    }
    lines = append(lines, strings.ToUpper(m.Role)+": "+m.Content)
  }
  lines = append(lines, "USER: "+prompt)
  return strings.Join(lines, "\n"), nil
}
