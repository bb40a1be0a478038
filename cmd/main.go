package main

import (
  "context"
  "fmt"
  "os"

  "github.com/joho/godotenv"

  "github.com/lumichat/lumichat-backend/internal/db"
  "github.com/lumichat/lumichat-backend/internal/handlers"
  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/middleware"
  "github.com/lumichat/lumichat-backend/internal/repos"
  "github.com/lumichat/lumichat-backend/internal/server"
  "github.com/lumichat/lumichat-backend/internal/services"
  "github.com/lumichat/lumichat-backend/internal/utils"
)

func main() {
  // Logger Setup
  _ = godotenv.Load()
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Environment Variables
  log.Info("Attempting to load environment variables for Main now...")
  port := utils.GetEnv("PORT", "3000", log)
  historyLimit := utils.GetEnvAsInt("CHAT_HISTORY_LIMIT", 20, log)
  log.Info("Environment variables loaded for Main :)")

  // Postgres Setup
  log.Info("Setting Up Postgres from Main now...")
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("DB init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()
  log.Info("Postgres Setup From Main Successful :)")

  // Repositories Setup
  log.Info("Setting Up Repositories from Main now...")
  profileRepo := repos.NewProfileRepo(thePG, log)
  conversationRepo := repos.NewConversationRepo(thePG, log)
  messageRepo := repos.NewMessageRepo(thePG, log)
  log.Info("Repositories Set Up From Main Successful :)")

  // Services Setup
  log.Info("Setting up Services from Main now...")
  identityService, err := services.NewIdentityService(log)
  if err != nil {
    log.Error("Fatal error: Cannot init IdentityService", "error", err)
    os.Exit(1)
  }
  geminiService, err := services.NewGeminiService(context.Background(), log)
  if err != nil {
    log.Error("Fatal error: Cannot init GeminiService", "error", err)
    os.Exit(1)
  }
  profileService := services.NewProfileService(thePG, log, profileRepo)
  conversationService := services.NewConversationService(thePG, log, conversationRepo)
  chatService := services.NewChatService(thePG, log, conversationRepo, messageRepo, geminiService, historyLimit)
  log.Info("Services Set Up From Main Successful :)")

  // Handler Setup
  log.Info("Setting Up Handlers from Main now...")
  authHandler := handlers.NewAuthHandler(identityService)
  profileHandler := handlers.NewProfileHandler(profileService)
  chatHandler := handlers.NewChatHandler(chatService)
  conversationHandler := handlers.NewConversationHandler(conversationService)
  log.Info("Handlers Set Up From Main Successful :)")

  // MiddleWare Setup
  log.Info("Setting Up Middleware from Main now...")
  authMiddleware := middleware.NewAuthMiddleware(log, identityService)
  log.Info("Middleware Set Up From Main Successful :)")

  // Router Setup
  log.Info("Setting Up Router from Main now...")
  router := server.NewRouter(server.RouterConfig{
    CorsConfig:          server.BuildCorsConfig(log),
    AuthMiddleware:      authMiddleware,
    AuthHandler:         authHandler,
    ProfileHandler:      profileHandler,
    ChatHandler:         chatHandler,
    ConversationHandler: conversationHandler,
  })
  log.Info("Router Set Up From Main Successful :)")

  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
