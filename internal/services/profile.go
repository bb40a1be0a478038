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

type ProfileService interface {
  GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error)
  UpdateProfile(ctx context.Context, id uuid.UUID, displayName, avatarURL *string) (*types.Profile, error)
}

type profileService struct {
  db          *gorm.DB
  log         *logger.Logger
  profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
  serviceLog := log.With("service", "ProfileService")
  return &profileService{
    db:          db,
    log:         serviceLog,
    profileRepo: profileRepo,
  }
}

func (ps *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
  profile, err := ps.profileRepo.GetByID(ctx, nil, id)
  if err != nil {
    ps.log.Warn("profile lookup failed", "profileID", id, "error", err)
    return nil, apperr.NotFound("profile not found", err.Error())
  }
  return profile, nil
}

func (ps *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, displayName, avatarURL *string) (*types.Profile, error) {
  updates := map[string]interface{}{}
  if displayName != nil {
    updates["display_name"] = *displayName
  }
  if avatarURL != nil {
    updates["avatar_url"] = *avatarURL
  }
  if len(updates) == 0 {
    return nil, apperr.Validation("no valid fields to update")
  }
  profile, err := ps.profileRepo.UpdateFields(ctx, nil, id, updates)
  if err != nil {
    ps.log.Warn("profile update failed", "profileID", id, "error", err)
    return nil, apperr.Validation("failed to update profile", err.Error())
  }
  return profile, nil
}
