// SPDX-FileCopyrightText:  © 2023 Siemens Healthcare GmbH
// SPDX-License-Identifier:   MIT

package logging

import (
	"log/slog"
	"os"

	"github.com/samber/lo"
	slogmulti "github.com/samber/slog-multi"
	"github.com/siemens-healthineers/kubemerge/internal/logging"
)

// SlogHandler is an slog handler that can flush and release its underlying sink.
type SlogHandler interface {
	slog.Handler
	Flush()
	Close()
}

// HandlerBuilder creates an slog handler honoring the given level variable.
type HandlerBuilder func(levelVar *slog.LevelVar) SlogHandler

type Slogger struct {
	Logger   *slog.Logger
	LevelVar *slog.LevelVar
	handlers []SlogHandler
}

// NewSlogger creates a logger writing to stdout until actual handlers are set.
func NewSlogger() *Slogger {
	levelVar := new(slog.LevelVar)
	options := &slog.HandlerOptions{Level: levelVar}

	return &Slogger{
		Logger:   slog.New(slog.NewTextHandler(os.Stdout, options)),
		LevelVar: levelVar,
	}
}

func (s *Slogger) SetHandlers(builders ...HandlerBuilder) *Slogger {
	s.handlers = lo.Map(builders, func(build HandlerBuilder, _ int) SlogHandler {
		return build(s.LevelVar)
	})

	handlers := lo.Map(s.handlers, func(handler SlogHandler, _ int) slog.Handler {
		return handler
	})
	s.Logger = slog.New(slogmulti.Fanout(handlers...))

	return s
}

func (s *Slogger) SetGlobally() *Slogger {
	slog.SetDefault(s.Logger)
	return s
}

func (s *Slogger) SetVerbosity(verbosity string) error {
	return logging.SetVerbosity(verbosity, s.LevelVar)
}

// Flush writes pending log entries to their sinks.
func (s *Slogger) Flush() {
	for _, handler := range s.handlers {
		handler.Flush()
	}
}

// Close releases all handler sinks, e.g. log file handles.
func (s *Slogger) Close() {
	for _, handler := range s.handlers {
		handler.Close()
	}
}
