package services

import (
  "context"
  "testing"
  "time"

  "github.com/google/uuid"
  "github.com/stretchr/testify/require"

  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/repos"
  "github.com/lumichat/lumichat-backend/internal/types"
)

func TestListForUser_NewestFirstAndScoped(t *testing.T) {
  db := openTestDB(t)
  log := logger.NewNop()
  svc := NewConversationService(db, log, repos.NewConversationRepo(db, log))

  owner := uuid.New()
  other := uuid.New()
  base := time.Now().UTC().Add(-time.Hour)
  for i, title := range []string{"first", "second", "third"} {
    title := title
    require.NoError(t, db.Create(&types.Conversation{
      ID:        uuid.New(),
      Title:     &title,
      CreatedBy: owner,
      CreatedAt: base.Add(time.Duration(i) * time.Minute),
    }).Error)
  }
  foreign := "not yours"
  require.NoError(t, db.Create(&types.Conversation{
    ID:        uuid.New(),
    Title:     &foreign,
    CreatedBy: other,
    CreatedAt: base.Add(time.Hour),
  }).Error)

  got, err := svc.ListForUser(context.Background(), owner)
  require.NoError(t, err)
  require.Len(t, got, 3)
  require.Equal(t, "third", *got[0].Title)
  require.Equal(t, "second", *got[1].Title)
  require.Equal(t, "first", *got[2].Title)
}

func TestListForUser_EmptyIsNotAnError(t *testing.T) {
  db := openTestDB(t)
  log := logger.NewNop()
  svc := NewConversationService(db, log, repos.NewConversationRepo(db, log))

  got, err := svc.ListForUser(context.Background(), uuid.New())
  require.NoError(t, err)
  require.NotNil(t, got)
  require.Len(t, got, 0)
}
