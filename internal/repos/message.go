package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/types"
)

type MessageRepo interface {
  Create(ctx context.Context, tx *gorm.DB, msg *types.Message) (*types.Message, error)
  // ListRecent returns up to limit messages for the conversation, newest
  // first when ascending is false, oldest first when true.
  ListRecent(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int, ascending bool) ([]*types.Message, error)
}

type messageRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
  return &messageRepo{
    db:  db,
    log: baseLog.With("repo", "MessageRepo"),
  }
}

func (mr *messageRepo) Create(ctx context.Context, tx *gorm.DB, msg *types.Message) (*types.Message, error) {
  if tx == nil {
    tx = mr.db
  }
  if msg.ID == uuid.Nil {
    msg.ID = uuid.New()
  }
  if err := tx.WithContext(ctx).Create(msg).Error; err != nil {
    mr.log.Error("failed to create message", "error", err)
    return nil, err
  }
  return msg, nil
}

func (mr *messageRepo) ListRecent(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int, ascending bool) ([]*types.Message, error) {
  if tx == nil {
    tx = mr.db
  }
  order := "created_at DESC"
  if ascending {
    order = "created_at ASC"
  }
  if limit <= 0 {
    limit = 20
  }
  var msgs []*types.Message
  if err := tx.WithContext(ctx).
    Where("conversation_id = ?", conversationID).
    Order(order).
    Limit(limit).
    Find(&msgs).Error; err != nil {
    mr.log.Error("failed to list recent messages", "error", err)
    return nil, err
  }
  return msgs, nil
}
