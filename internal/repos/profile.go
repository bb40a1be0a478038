package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/types"
)

type ProfileRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Profile, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.Profile, error)
}

type profileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
  return &profileRepo{
    db:  db,
    log: baseLog.With("repo", "ProfileRepo"),
  }
}

func (pr *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Profile, error) {
  if tx == nil {
    tx = pr.db
  }
  var p types.Profile
  if err := tx.WithContext(ctx).
    Where("id = ?", id).
    First(&p).Error; err != nil {
    return nil, err
  }
  return &p, nil
}

// UpdateFields applies only the columns present in updates; absent columns are
// left untouched.
func (pr *profileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.Profile, error) {
  if tx == nil {
    tx = pr.db
  }
  res := tx.WithContext(ctx).
    Model(&types.Profile{}).
    Where("id = ?", id).
    Updates(updates)
  if res.Error != nil {
    pr.log.Error("failed to update profile", "error", res.Error)
    return nil, res.Error
  }
  if res.RowsAffected == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return pr.GetByID(ctx, tx, id)
}
