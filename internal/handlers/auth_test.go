package handlers

import (
  "context"
  "encoding/json"
  "net/http"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/stretchr/testify/require"

  "github.com/lumichat/lumichat-backend/internal/apperr"
  "github.com/lumichat/lumichat-backend/internal/services"
  "github.com/lumichat/lumichat-backend/internal/types"
)

type fakeIdentity struct {
  user    types.AuthUser
  session types.AuthSession
  err     error
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password, username string) (types.AuthUser, error) {
  if f.err != nil {
    return types.AuthUser{}, f.err
  }
  return f.user, nil
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (types.AuthUser, types.AuthSession, error) {
  if f.err != nil {
    return types.AuthUser{}, types.AuthSession{}, f.err
  }
  return f.user, f.session, nil
}

func (f *fakeIdentity) UserFromToken(ctx context.Context, token string) (types.AuthUser, error) {
  if f.err != nil {
    return types.AuthUser{}, f.err
  }
  return f.user, nil
}

func newAuthRouter(identity services.IdentityService) *gin.Engine {
  gin.SetMode(gin.TestMode)
  router := gin.New()
  ah := NewAuthHandler(identity)
  router.POST("/auth/signup", ah.SignUp)
  router.POST("/auth/login", ah.Login)
  return router
}

func TestSignUp_Created(t *testing.T) {
  user := types.AuthUser{ID: uuid.New(), Email: "a@x.com"}
  router := newAuthRouter(&fakeIdentity{user: user})

  w := postJSON(t, router, "/auth/signup", `{"email":"a@x.com","password":"secret1","username":"ada"}`)
  require.Equal(t, http.StatusCreated, w.Code)

  var body map[string]interface{}
  require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
  require.Equal(t, "ada", body["username"])
  gotUser, ok := body["user"].(map[string]interface{})
  require.True(t, ok)
  require.Equal(t, user.ID.String(), gotUser["id"])
}

func TestSignUp_ProviderRejection(t *testing.T) {
  router := newAuthRouter(&fakeIdentity{err: apperr.Validation("sign up failed", "User already registered")})

  w := postJSON(t, router, "/auth/signup", `{"email":"a@x.com","password":"weak"}`)
  require.Equal(t, http.StatusBadRequest, w.Code)
  require.Contains(t, w.Body.String(), "User already registered")
}

func TestLogin_ReturnsUserAndSession(t *testing.T) {
  user := types.AuthUser{ID: uuid.New(), Email: "a@x.com"}
  session := types.AuthSession{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 3600, RefreshToken: "ref"}
  router := newAuthRouter(&fakeIdentity{user: user, session: session})

  w := postJSON(t, router, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)
  require.Equal(t, http.StatusOK, w.Code)

  var body map[string]interface{}
  require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
  gotSession, ok := body["session"].(map[string]interface{})
  require.True(t, ok)
  require.Equal(t, "tok", gotSession["access_token"])
}

func TestLogin_InvalidBody(t *testing.T) {
  router := newAuthRouter(&fakeIdentity{})

  w := postJSON(t, router, "/auth/login", `{"email": 42}`)
  require.Equal(t, http.StatusBadRequest, w.Code)
}
