package logger

import (
	"context"
	"log"
	"strings"
)

// NewStdLogger returns a standard library logger that forwards every line to
// log at the given level, for APIs like http.Server.ErrorLog that accept
// nothing else.
func NewStdLogger(logger *Logger, level Level) *log.Logger {
	return log.New(&stdWriter{logger: logger, level: level}, "", 0)
}

// stdWriter adapts a Logger to io.Writer; each write becomes one log line.
type stdWriter struct {
	logger *Logger
	level  Level
}

func (s *stdWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")

	switch s.level {
	case LevelDebug:
		s.logger.Debugc(context.Background(), 5, msg)
	case LevelWarn:
		s.logger.Warnc(context.Background(), 5, msg)
	case LevelError:
		s.logger.Errorc(context.Background(), 5, msg)
	default:
		s.logger.Infoc(context.Background(), 5, msg)
	}

	return len(p), nil
}
