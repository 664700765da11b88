package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType identifies the class of a security-relevant event.
type EventType string

const (
	EventLoginSuccess     EventType = "login_success"
	EventLoginFailed      EventType = "login_failed"
	EventSignup           EventType = "signup"
	EventForbiddenAccess  EventType = "forbidden_access"
	EventRateLimited      EventType = "rate_limited"
	EventUploadRejected   EventType = "upload_rejected"
	EventInvalidToken     EventType = "invalid_token"
	EventValidationFailed EventType = "validation_failed"
)

// Event is a single structured security event. Subject carries the actor
// identity (user id or email); keep PII out of Details.
type Event struct {
	Event     EventType
	Subject   string
	IP        string
	UserAgent string
	RequestID string
	Details   map[string]interface{}
}

// Logger writes security events as structured JSON on a dedicated zap
// stream, separate from the application slog output.
type Logger struct {
	zl          *zap.Logger
	serviceName string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init builds the global audit logger. Safe to call more than once; only
// the first call takes effect.
func Init(serviceName string) *Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.MessageKey = "message"
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}

		zl, err := cfg.Build()
		if err != nil {
			// Last resort: a no-op logger keeps call sites safe.
			zl = zap.NewNop()
		}
		defaultLogger = &Logger{zl: zl, serviceName: serviceName}
	})
	return defaultLogger
}

// Record emits an event through the global logger. A nil global logger
// (Init never called, e.g. in unit tests) is a no-op.
func Record(ev Event) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Record(ev)
}

func (l *Logger) Record(ev Event) {
	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("event", string(ev.Event)),
		zap.Time("at", time.Now().UTC()),
	}
	if ev.Subject != "" {
		fields = append(fields, zap.String("subject", ev.Subject))
	}
	if ev.IP != "" {
		fields = append(fields, zap.String("ip", ev.IP))
	}
	if ev.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", ev.UserAgent))
	}
	if ev.RequestID != "" {
		fields = append(fields, zap.String("request_id", ev.RequestID))
	}
	if len(ev.Details) > 0 {
		fields = append(fields, zap.Any("details", ev.Details))
	}
	l.zl.Info("security_event", fields...)
}

// Sync flushes buffered entries; call on shutdown.
func (l *Logger) Sync() {
	_ = l.zl.Sync()
}
