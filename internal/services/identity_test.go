package services

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/stretchr/testify/require"

  "github.com/lumichat/lumichat-backend/internal/apperr"
  "github.com/lumichat/lumichat-backend/internal/logger"
)

func newFakeProvider(t *testing.T, userID uuid.UUID) (*httptest.Server, *int) {
  t.Helper()
  calls := 0
  mux := http.NewServeMux()
  mux.HandleFunc("POST /auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
    calls++
    var body map[string]interface{}
    require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
    if body["email"] == "taken@example.com" {
      w.WriteHeader(http.StatusBadRequest)
      _ = json.NewEncoder(w).Encode(map[string]string{"msg": "User already registered"})
      return
    }
    _ = json.NewEncoder(w).Encode(map[string]interface{}{
      "id":         userID.String(),
      "email":      body["email"],
      "created_at": time.Now().UTC().Format(time.RFC3339),
    })
  })
  mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
    calls++
    require.Equal(t, "password", r.URL.Query().Get("grant_type"))
    var body map[string]interface{}
    require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
    if body["password"] != "secret1" {
      w.WriteHeader(http.StatusBadRequest)
      _ = json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
      return
    }
    _ = json.NewEncoder(w).Encode(map[string]interface{}{
      "access_token":  "access-token-1",
      "token_type":    "bearer",
      "expires_in":    3600,
      "refresh_token": "refresh-token-1",
      "user": map[string]string{
        "id":    userID.String(),
        "email": body["email"].(string),
      },
    })
  })
  mux.HandleFunc("GET /auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
    calls++
    if r.Header.Get("Authorization") != "Bearer access-token-1" {
      w.WriteHeader(http.StatusUnauthorized)
      _ = json.NewEncoder(w).Encode(map[string]string{"msg": "invalid JWT"})
      return
    }
    _ = json.NewEncoder(w).Encode(map[string]string{
      "id":    userID.String(),
      "email": "a@x.com",
    })
  })
  srv := httptest.NewServer(mux)
  t.Cleanup(srv.Close)
  return srv, &calls
}

func TestIdentity_SignUpSignInResolveSameUser(t *testing.T) {
  userID := uuid.New()
  srv, _ := newFakeProvider(t, userID)
  svc := NewIdentityServiceWithConfig(logger.NewNop(), IdentityConfig{BaseURL: srv.URL, APIKey: "anon"})

  signedUp, err := svc.SignUp(context.Background(), "a@x.com", "secret1", "ada")
  require.NoError(t, err)
  require.Equal(t, userID, signedUp.ID)
  require.Equal(t, "a@x.com", signedUp.Email)

  signedIn, session, err := svc.SignIn(context.Background(), "a@x.com", "secret1")
  require.NoError(t, err)
  require.Equal(t, userID, signedIn.ID)
  require.Equal(t, "access-token-1", session.AccessToken)
  require.Equal(t, "refresh-token-1", session.RefreshToken)

  resolved, err := svc.UserFromToken(context.Background(), session.AccessToken)
  require.NoError(t, err)
  require.Equal(t, signedIn.ID, resolved.ID)
}

func TestIdentity_ProviderRejectionsSurfaceDetails(t *testing.T) {
  srv, _ := newFakeProvider(t, uuid.New())
  svc := NewIdentityServiceWithConfig(logger.NewNop(), IdentityConfig{BaseURL: srv.URL})

  _, err := svc.SignUp(context.Background(), "taken@example.com", "secret1", "")
  require.Error(t, err)
  require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
  require.Equal(t, "User already registered", apperr.DetailsOf(err))

  _, _, err = svc.SignIn(context.Background(), "a@x.com", "wrong")
  require.Error(t, err)
  require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
  require.Equal(t, "Invalid login credentials", apperr.DetailsOf(err))

  _, err = svc.UserFromToken(context.Background(), "bogus")
  require.Error(t, err)
  require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestIdentity_PresenceValidationBeforeNetwork(t *testing.T) {
  srv, calls := newFakeProvider(t, uuid.New())
  svc := NewIdentityServiceWithConfig(logger.NewNop(), IdentityConfig{BaseURL: srv.URL})

  _, err := svc.SignUp(context.Background(), "", "secret1", "")
  require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

  _, _, err = svc.SignIn(context.Background(), "a@x.com", "  ")
  require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

  require.Equal(t, 0, *calls)
}

func TestIdentity_LocalJWTVerification(t *testing.T) {
  secret := "super-secret"
  userID := uuid.New()
  svc := NewIdentityServiceWithConfig(logger.NewNop(), IdentityConfig{BaseURL: "http://unused.invalid", JWTSecret: secret})

  claims := jwt.MapClaims{
    "sub":   userID.String(),
    "email": "a@x.com",
    "exp":   time.Now().Add(time.Hour).Unix(),
  }
  tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
  require.NoError(t, err)

  user, err := svc.UserFromToken(context.Background(), tokenString)
  require.NoError(t, err)
  require.Equal(t, userID, user.ID)
  require.Equal(t, "a@x.com", user.Email)

  // expired token
  claims["exp"] = time.Now().Add(-time.Hour).Unix()
  expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
  require.NoError(t, err)
  _, err = svc.UserFromToken(context.Background(), expired)
  require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

  // wrong secret
  forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID.String()}).SignedString([]byte("other"))
  require.NoError(t, err)
  _, err = svc.UserFromToken(context.Background(), forged)
  require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
