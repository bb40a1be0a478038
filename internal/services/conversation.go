package services

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/lumichat/lumichat-backend/internal/apperr"
  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/repos"
  "github.com/lumichat/lumichat-backend/internal/types"
)

type ConversationService interface {
  ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error)
}

type conversationService struct {
  db               *gorm.DB
  log              *logger.Logger
  conversationRepo repos.ConversationRepo
}

func NewConversationService(db *gorm.DB, log *logger.Logger, conversationRepo repos.ConversationRepo) ConversationService {
  serviceLog := log.With("service", "ConversationService")
  return &conversationService{
    db:               db,
    log:              serviceLog,
    conversationRepo: conversationRepo,
  }
}

// ListForUser returns the conversations the user created, newest first. A
// user with no conversations gets an empty list, not an error.
func (cs *conversationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error) {
  conversations, err := cs.conversationRepo.ListByOwner(ctx, nil, userID)
  if err != nil {
    cs.log.Error("failed to fetch conversations", "userID", userID, "error", err)
    return nil, apperr.Internal("failed to fetch conversations", err.Error())
  }
  return conversations, nil
}
