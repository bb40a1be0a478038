package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/lumichat/lumichat-backend/internal/apperr"
  "github.com/lumichat/lumichat-backend/internal/logger"
  "github.com/lumichat/lumichat-backend/internal/types"
  "github.com/lumichat/lumichat-backend/internal/utils"
)

// IdentityService is a pass-through to the external identity provider. No
// credentials are ever stored locally.
type IdentityService interface {
  SignUp(ctx context.Context, email, password, username string) (types.AuthUser, error)
  SignIn(ctx context.Context, email, password string) (types.AuthUser, types.AuthSession, error)
  UserFromToken(ctx context.Context, token string) (types.AuthUser, error)
}

type IdentityConfig struct {
  BaseURL string
  APIKey  string
  // JWTSecret, when set, verifies the provider's HS256 access tokens locally
  // instead of calling the provider's user endpoint on every request.
  JWTSecret string
  Client    *http.Client
}

type identityService struct {
  log       *logger.Logger
  client    *http.Client
  baseURL   string
  apiKey    string
  jwtSecret string
}

func NewIdentityService(log *logger.Logger) (IdentityService, error) {
  serviceLog := log.With("service", "IdentityService")
  baseURL := utils.GetEnv("AUTH_API_URL", "", log)
  if baseURL == "" {
    return nil, fmt.Errorf("missing AUTH_API_URL environment variable")
  }
  apiKey := utils.GetEnv("AUTH_API_KEY", "", log)
  if apiKey == "" {
    serviceLog.Warn("AUTH_API_KEY not set; identity provider calls might be unauthorized")
  }
  jwtSecret := utils.GetEnv("AUTH_JWT_SECRET", "", log)
  if jwtSecret != "" {
    serviceLog.Info("AUTH_JWT_SECRET set; access tokens will be verified locally")
  }
  return NewIdentityServiceWithConfig(log, IdentityConfig{
    BaseURL:   baseURL,
    APIKey:    apiKey,
    JWTSecret: jwtSecret,
  }), nil
}

func NewIdentityServiceWithConfig(log *logger.Logger, cfg IdentityConfig) IdentityService {
  client := cfg.Client
  if client == nil {
    client = &http.Client{Timeout: 15 * time.Second}
  }
  return &identityService{
    log:       log.With("service", "IdentityService"),
    client:    client,
    baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
    apiKey:    cfg.APIKey,
    jwtSecret: cfg.JWTSecret,
  }
}

// providerUser is the provider's wire shape for a user record.
type providerUser struct {
  ID        string `json:"id"`
  Email     string `json:"email"`
  CreatedAt string `json:"created_at"`
}

// signupResponse covers both provider modes: with email confirmation enabled
// the user object is the top-level body, otherwise it is nested next to the
// session fields.
type signupResponse struct {
  providerUser
  User *providerUser `json:"user"`
}

type tokenResponse struct {
  AccessToken  string        `json:"access_token"`
  TokenType    string        `json:"token_type"`
  ExpiresIn    int           `json:"expires_in"`
  RefreshToken string        `json:"refresh_token"`
  User         *providerUser `json:"user"`
}

type providerError struct {
  Msg              string `json:"msg"`
  Message          string `json:"message"`
  ErrorField       string `json:"error"`
  ErrorDescription string `json:"error_description"`
}

func (pe providerError) detail() string {
  for _, s := range []string{pe.Msg, pe.Message, pe.ErrorDescription, pe.ErrorField} {
    if s != "" {
      return s
    }
  }
  return ""
}

func mapProviderUser(pu *providerUser) (types.AuthUser, error) {
  if pu == nil {
    return types.AuthUser{}, fmt.Errorf("provider returned no user")
  }
  id, err := uuid.Parse(pu.ID)
  if err != nil {
    return types.AuthUser{}, fmt.Errorf("provider returned a non-uuid user id %q: %w", pu.ID, err)
  }
  user := types.AuthUser{ID: id, Email: pu.Email}
  if pu.CreatedAt != "" {
    if t, err := time.Parse(time.RFC3339, pu.CreatedAt); err == nil {
      user.CreatedAt = &t
    }
  }
  return user, nil
}

func validateCredentials(email, password string) error {
  if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
    return apperr.Validation("email and password required")
  }
  return nil
}

func (is *identityService) SignUp(ctx context.Context, email, password, username string) (types.AuthUser, error) {
  if err := validateCredentials(email, password); err != nil {
    return types.AuthUser{}, err
  }
  payload := map[string]interface{}{
    "email":    email,
    "password": password,
  }
  if username != "" {
    // Forwarded as profile metadata; the provider-side trigger that
    // provisions profile rows picks it up.
    payload["data"] = map[string]interface{}{"username": username}
  }
  body, status, err := is.post(ctx, "/auth/v1/signup", "", payload)
  if err != nil {
    is.log.Warn("identity provider signup call failed", "error", err)
    return types.AuthUser{}, apperr.Upstream("identity provider unreachable", err.Error())
  }
  if status < 200 || status > 299 {
    detail := decodeProviderError(body)
    is.log.Warn("identity provider rejected signup", "statusCode", status, "detail", detail)
    return types.AuthUser{}, apperr.Validation("sign up failed", detail)
  }
  var resp signupResponse
  if err := json.Unmarshal(body, &resp); err != nil {
    return types.AuthUser{}, apperr.Upstream("invalid identity provider response", err.Error())
  }
  pu := resp.User
  if pu == nil {
    pu = &resp.providerUser
  }
  user, err := mapProviderUser(pu)
  if err != nil {
    return types.AuthUser{}, apperr.Upstream("invalid identity provider response", err.Error())
  }
  return user, nil
}

func (is *identityService) SignIn(ctx context.Context, email, password string) (types.AuthUser, types.AuthSession, error) {
  if err := validateCredentials(email, password); err != nil {
    return types.AuthUser{}, types.AuthSession{}, err
  }
  payload := map[string]interface{}{
    "email":    email,
    "password": password,
  }
  body, status, err := is.post(ctx, "/auth/v1/token", "grant_type=password", payload)
  if err != nil {
    is.log.Warn("identity provider token call failed", "error", err)
    return types.AuthUser{}, types.AuthSession{}, apperr.Upstream("identity provider unreachable", err.Error())
  }
  if status < 200 || status > 299 {
    detail := decodeProviderError(body)
    is.log.Warn("identity provider rejected login", "statusCode", status, "detail", detail)
    return types.AuthUser{}, types.AuthSession{}, apperr.Validation("login failed", detail)
  }
  var resp tokenResponse
  if err := json.Unmarshal(body, &resp); err != nil {
    return types.AuthUser{}, types.AuthSession{}, apperr.Upstream("invalid identity provider response", err.Error())
  }
  user, err := mapProviderUser(resp.User)
  if err != nil {
    return types.AuthUser{}, types.AuthSession{}, apperr.Upstream("invalid identity provider response", err.Error())
  }
  session := types.AuthSession{
    AccessToken:  resp.AccessToken,
    TokenType:    resp.TokenType,
    ExpiresIn:    resp.ExpiresIn,
    RefreshToken: resp.RefreshToken,
  }
  return user, session, nil
}

func (is *identityService) UserFromToken(ctx context.Context, token string) (types.AuthUser, error) {
  if strings.TrimSpace(token) == "" {
    return types.AuthUser{}, apperr.Unauthenticated("empty token")
  }
  if is.jwtSecret != "" {
    return is.userFromLocalJWT(token)
  }

  reqURL := is.baseURL + "/auth/v1/user"
  req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
  if err != nil {
    return types.AuthUser{}, err
  }
  is.setHeaders(req)
  req.Header.Set("Authorization", "Bearer "+token)
  resp, err := is.client.Do(req)
  if err != nil {
    is.log.Warn("identity provider user call failed", "error", err)
    return types.AuthUser{}, apperr.Upstream("identity provider unreachable", err.Error())
  }
  defer resp.Body.Close()
  body, err := io.ReadAll(resp.Body)
  if err != nil {
    return types.AuthUser{}, apperr.Upstream("failed to read identity provider response", err.Error())
  }
  if resp.StatusCode < 200 || resp.StatusCode > 299 {
    detail := decodeProviderError(body)
    return types.AuthUser{}, apperr.Unauthenticated("invalid or expired token", detail)
  }
  var pu providerUser
  if err := json.Unmarshal(body, &pu); err != nil {
    return types.AuthUser{}, apperr.Upstream("invalid identity provider response", err.Error())
  }
  user, err := mapProviderUser(&pu)
  if err != nil {
    return types.AuthUser{}, apperr.Unauthenticated("invalid or expired token", err.Error())
  }
  return user, nil
}

func (is *identityService) userFromLocalJWT(tokenString string) (types.AuthUser, error) {
  tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
    }
    return []byte(is.jwtSecret), nil
  })
  if err != nil || !tok.Valid {
    detail := ""
    if err != nil {
      detail = err.Error()
    }
    return types.AuthUser{}, apperr.Unauthenticated("invalid or expired token", detail)
  }
  claims, ok := tok.Claims.(jwt.MapClaims)
  if !ok {
    return types.AuthUser{}, apperr.Unauthenticated("invalid or expired token")
  }
  sub, err := claims.GetSubject()
  if err != nil || sub == "" {
    return types.AuthUser{}, apperr.Unauthenticated("invalid or expired token", "token has no subject")
  }
  id, err := uuid.Parse(sub)
  if err != nil {
    return types.AuthUser{}, apperr.Unauthenticated("invalid or expired token", "token subject is not a user id")
  }
  user := types.AuthUser{ID: id}
  if email, ok := claims["email"].(string); ok {
    user.Email = email
  }
  return user, nil
}

func (is *identityService) post(ctx context.Context, path, query string, payload interface{}) ([]byte, int, error) {
  b, err := json.Marshal(payload)
  if err != nil {
    return nil, 0, err
  }
  reqURL := is.baseURL + path
  if query != "" {
    reqURL += "?" + query
  }
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
  if err != nil {
    return nil, 0, err
  }
  is.setHeaders(req)
  resp, err := is.client.Do(req)
  if err != nil {
    return nil, 0, err
  }
  defer resp.Body.Close()
  body, err := io.ReadAll(resp.Body)
  if err != nil {
    return nil, 0, err
  }
  return body, resp.StatusCode, nil
}

func (is *identityService) setHeaders(req *http.Request) {
  req.Header.Set("Content-Type", "application/json")
  if is.apiKey != "" {
    req.Header.Set("apikey", is.apiKey)
  }
}

func decodeProviderError(body []byte) string {
  var pe providerError
  if err := json.Unmarshal(body, &pe); err != nil {
    return strings.TrimSpace(string(body))
  }
  return pe.detail()
}
