package apperr

import (
  "errors"
  "fmt"
  "net/http"
  "testing"

  "github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
  cases := []struct {
    err  error
    want int
  }{
    {Validation("bad input"), http.StatusBadRequest},
    {Unauthenticated("no token"), http.StatusUnauthorized},
    {Forbidden("not yours"), http.StatusForbidden},
    {NotFound("gone"), http.StatusNotFound},
    {Upstream("provider down"), http.StatusBadGateway},
    {Internal("oops"), http.StatusInternalServerError},
    {errors.New("plain error"), http.StatusInternalServerError},
  }
  for _, tc := range cases {
    require.Equal(t, tc.want, Status(tc.err), "for %v", tc.err)
  }
}

func TestDetailsAndMessage(t *testing.T) {
  err := Validation("login failed", "Invalid login credentials")
  require.Equal(t, "login failed", Message(err))
  require.Equal(t, "Invalid login credentials", DetailsOf(err))
  require.Equal(t, "login failed: Invalid login credentials", err.Error())

  bare := NotFound("profile not found")
  require.Equal(t, "profile not found", bare.Error())
  require.Empty(t, DetailsOf(bare))
}

func TestKindSurvivesWrapping(t *testing.T) {
  inner := Forbidden("forbidden")
  wrapped := fmt.Errorf("handling request: %w", inner)
  require.Equal(t, KindForbidden, KindOf(wrapped))
  require.Equal(t, http.StatusForbidden, Status(wrapped))
}

func TestPlainErrorsAreInternal(t *testing.T) {
  err := errors.New("boom")
  require.Equal(t, KindInternal, KindOf(err))
  require.Equal(t, "internal server error", Message(err))
  require.Empty(t, DetailsOf(err))
}
