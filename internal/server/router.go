package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/lumichat/lumichat-backend/internal/handlers"
  "github.com/lumichat/lumichat-backend/internal/middleware"
)

type RouterConfig struct {
  CorsConfig          cors.Config
  AuthMiddleware      *middleware.AuthMiddleware
  AuthHandler         *handlers.AuthHandler
  ProfileHandler      *handlers.ProfileHandler
  ChatHandler         *handlers.ChatHandler
  ConversationHandler *handlers.ConversationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  //-----------------------------------------
  // Cors Setup
  //-----------------------------------------
  router.Use(cors.New(cfg.CorsConfig))

  //-----------------------------------------
  // Health Routes
  //-----------------------------------------
  router.GET("/health", handlers.Healthz)

  //-----------------------------------------
  // Public Routes
  //-----------------------------------------
  router.POST("/auth/signup", cfg.AuthHandler.SignUp)
  router.POST("/auth/login", cfg.AuthHandler.Login)
  router.GET("/profiles/:id", cfg.ProfileHandler.GetProfileByID)

  //------------------------------------------
  // Protected Routes
  //------------------------------------------
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())

  protected.GET("/auth/me", cfg.AuthHandler.Me)
  protected.GET("/profile/me", cfg.ProfileHandler.GetMyProfile)
  protected.PATCH("/profile/me", cfg.ProfileHandler.UpdateMyProfile)
  protected.POST("/chat", cfg.ChatHandler.Chat)
  protected.GET("/conversation", cfg.ConversationHandler.ListMyConversations)

  return router
}
