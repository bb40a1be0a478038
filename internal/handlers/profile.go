package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/lumichat/lumichat-backend/internal/requestdata"
  "github.com/lumichat/lumichat-backend/internal/services"
)

type ProfileHandler struct {
  profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
  return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) GetProfileByID(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
    return
  }
  profile, err := ph.profileService.GetProfile(c.Request.Context(), id)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (ph *ProfileHandler) GetMyProfile(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }
  profile, err := ph.profileService.GetProfile(c.Request.Context(), rd.User.ID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (ph *ProfileHandler) UpdateMyProfile(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }
  var req struct {
    DisplayName *string `json:"displayName"`
    AvatarURL   *string `json:"avatarUrl"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  profile, err := ph.profileService.UpdateProfile(c.Request.Context(), rd.User.ID, req.DisplayName, req.AvatarURL)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"profile": profile})
}
