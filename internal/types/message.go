package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
)

const (
  RoleUser      = "user"
  RoleAssistant = "assistant"
  RoleSystem    = "system"
  RoleTool      = "tool"
)

// Message rows are append-only; created_at is the ordering key when they are
// replayed as conversational context.
type Message struct {
  ID             uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
  ConversationID uuid.UUID          `gorm:"type:uuid;not null;index" json:"conversationId"`
  Role           string             `gorm:"column:role;not null;index" json:"role"`
  Content        string             `gorm:"column:content;type:text;not null;default:''" json:"content"`
  SenderID       *uuid.UUID         `gorm:"type:uuid;index" json:"senderId,omitempty"`
  Metadata       datatypes.JSONMap  `gorm:"type:jsonb" json:"metadata,omitempty"`

  CreatedAt time.Time `gorm:"not null;default:now();index" json:"createdAt"`
}

func (Message) TableName() string {
  return "messages"
}
