package types

import (
  "time"

  "github.com/google/uuid"
)

type Conversation struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Title     *string   `gorm:"column:title" json:"title"`
  IsGroup   bool      `gorm:"column:is_group;not null;default:false" json:"isGroup"`
  CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`

  CreatedAt time.Time `gorm:"not null;default:now();index" json:"createdAt"`
}

func (Conversation) TableName() string {
  return "conversations"
}
