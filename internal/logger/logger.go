package logger

import (
  "fmt"

  "go.uber.org/zap"
)

// Logger is a thin wrapper around zap's sugared logger so callers can do
// log.With("service", "ChatService") and log.Info("msg", "key", value)
// without importing zap everywhere.
type Logger struct {
  sugar *zap.SugaredLogger
}

func New(mode string) (*Logger, error) {
  var z *zap.Logger
  var err error
  switch mode {
  case "production":
    z, err = zap.NewProduction()
  case "development", "":
    z, err = zap.NewDevelopment()
  default:
    return nil, fmt.Errorf("unknown log mode %q (want development or production)", mode)
  }
  if err != nil {
    return nil, err
  }
  return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) With(keysAndValues ...interface{}) *Logger {
  return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
  l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
  l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
  l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
  l.sugar.Errorw(msg, keysAndValues...)
}

func (l *Logger) Sync() error {
  return l.sugar.Sync()
}

// NewNop returns a logger that discards everything. Handy in tests.
func NewNop() *Logger {
  return &Logger{sugar: zap.NewNop().Sugar()}
}
