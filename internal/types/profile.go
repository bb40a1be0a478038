package types

import (
  "time"

  "github.com/google/uuid"
)

// Profile is 1:1 with an identity provider user. Rows are provisioned out of
// band when the account is created; this service only reads and updates them.
type Profile struct {
  ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  DisplayName *string   `gorm:"column:display_name" json:"displayName"`
  AvatarURL   *string   `gorm:"column:avatar_url" json:"avatarUrl"`

  CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Profile) TableName() string {
  return "profiles"
}
