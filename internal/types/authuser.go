package types

import (
  "time"

  "github.com/google/uuid"
)

// AuthUser is the identity provider's view of a user. There is no local row
// for it; every request resolves it live from a token.
type AuthUser struct {
  ID        uuid.UUID  `json:"id"`
  Email     string     `json:"email,omitempty"`
  CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AuthSession is the token bundle the identity provider hands back on login.
type AuthSession struct {
  AccessToken  string `json:"access_token"`
  TokenType    string `json:"token_type,omitempty"`
  ExpiresIn    int    `json:"expires_in,omitempty"`
  RefreshToken string `json:"refresh_token,omitempty"`
}
