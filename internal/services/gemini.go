package services

import (
  "context"
  "fmt"
  "strings"

  "google.golang.org/genai"

  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/utils"
)

// GeminiService wraps the generative-text provider. When no API key is
// configured the service stays constructible but unavailable, and chat
// degrades instead of erroring.
type GeminiService interface {
  Available() bool
  DefaultModel() string
  Generate(ctx context.Context, model, prompt string) (*GenerateResult, error)
}

type GenerateResult struct {
  Text         string
  FinishReason string
  Safety       []*genai.SafetyRating
}

type geminiService struct {
  log          *logger.Logger
  client       *genai.Client
  defaultModel string
}

func NewGeminiService(ctx context.Context, log *logger.Logger) (GeminiService, error) {
  serviceLog := log.With("service", "GeminiService")
  apiKey := utils.GetEnv("GEMINI_API_KEY", "", log)
  defaultModel := utils.GetEnv("GEMINI_MODEL", "gemini-1.5-flash", log)
  if apiKey == "" {
    serviceLog.Warn("GEMINI_API_KEY not set; chat will answer with aiUnavailable")
    return &geminiService{log: serviceLog, defaultModel: defaultModel}, nil
  }
  client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
  if err != nil {
    serviceLog.Error("Failed to create Gemini client", "error", err)
    return nil, fmt.Errorf("failed to create Gemini client: %w", err)
  }
  return &geminiService{log: serviceLog, client: client, defaultModel: defaultModel}, nil
}

func (gs *geminiService) Available() bool {
  return gs.client != nil
}

func (gs *geminiService) DefaultModel() string {
  return gs.defaultModel
}

func (gs *geminiService) Generate(ctx context.Context, model, prompt string) (*GenerateResult, error) {
  if gs.client == nil {
    return nil, fmt.Errorf("gemini client is not configured")
  }
  if model == "" {
    model = gs.defaultModel
  }
  resp, err := gs.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
  if err != nil {
    gs.log.Warn("Gemini generation failed", "model", model, "error", err)
    return nil, err
  }
  result := &GenerateResult{Text: strings.TrimSpace(resp.Text())}
  if len(resp.Candidates) > 0 {
    first := resp.Candidates[0]
    result.FinishReason = string(first.FinishReason)
    result.Safety = first.SafetyRatings
  }
  return result, nil
}
