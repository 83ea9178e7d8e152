package listener

import (
	"context"

	"github.com/rs/zerolog"
)

// LogListener records notifications as structured log lines.
type LogListener struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func NewLogListener(logger zerolog.Logger, level zerolog.Level) *LogListener {
	return &LogListener{
		logger: logger.With().Str("component", "stock-listener").Logger(),
		level:  level,
	}
}

func (l *LogListener) Receive(ctx context.Context, message string) error {
	l.logger.WithLevel(l.level).Str("notification", message).Msg("stock notification")
	return nil
}
