package diagnostic

import "go.uber.org/zap"

// ZapSink forwards messages to a zap logger.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink wraps log. A nil logger yields a no-op sink.
func NewZapSink(log *zap.Logger) *ZapSink {
	if log == nil {
		log = zap.NewNop()
	}

	return &ZapSink{log: log}
}

// Log writes message at info level.
func (s *ZapSink) Log(message string) {
	s.log.Info(message)
}

// Warn writes message at warn level.
func (s *ZapSink) Warn(message string) {
	s.log.Warn(message)
}

// With returns a sink whose entries carry the given fields.
func (s *ZapSink) With(fields ...zap.Field) *ZapSink {
	return &ZapSink{log: s.log.With(fields...)}
}
