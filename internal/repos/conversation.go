package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/types"
)

type ConversationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, conversation *types.Conversation) (*types.Conversation, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Conversation, error)
  ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Conversation, error)
}

type conversationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
  return &conversationRepo{
    db:  db,
    log: baseLog.With("repo", "ConversationRepo"),
  }
}

func (cr *conversationRepo) Create(ctx context.Context, tx *gorm.DB, conversation *types.Conversation) (*types.Conversation, error) {
  if tx == nil {
    tx = cr.db
  }
  if conversation.ID == uuid.Nil {
    conversation.ID = uuid.New()
  }
  if err := tx.WithContext(ctx).Create(conversation).Error; err != nil {
    cr.log.Error("failed to create conversation", "error", err)
    return nil, err
  }
  return conversation, nil
}

func (cr *conversationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Conversation, error) {
  if tx == nil {
    tx = cr.db
  }
  var c types.Conversation
  if err := tx.WithContext(ctx).
    Where("id = ?", id).
    First(&c).Error; err != nil {
    return nil, err
  }
  return &c, nil
}

func (cr *conversationRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Conversation, error) {
  if tx == nil {
    tx = cr.db
  }
  conversations := make([]*types.Conversation, 0)
  if err := tx.WithContext(ctx).
    Where("created_by = ?", ownerID).
    Order("created_at DESC").
    Find(&conversations).Error; err != nil {
    cr.log.Error("failed to list conversations by owner", "error", err)
    return nil, err
  }
  return conversations, nil
}
