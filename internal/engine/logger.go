package engine

import (
	"context"
	"log/slog"
)

// nopHandler drops every record. Engines log nothing until WithLogger
// hands them a logger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

func nopLogger() *slog.Logger { return slog.New(nopHandler{}) }
