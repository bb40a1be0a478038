package requestdata

import (
  "context"

  "github.com/lumichat/lumichat-backend/internal/types"
)

type key struct{}

var requestDataKey key

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
  return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
  val := ctx.Value(requestDataKey)
  if rd, ok := val.(*RequestData); ok {
    return rd
  }
  return nil
}

// RequestData carries the authenticated identity through the request context.
// It is set once by the auth middleware and never mutated afterwards.
type RequestData struct {
  TokenString string
  User        types.AuthUser
}
