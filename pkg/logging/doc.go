// Package logging provides structured logging configuration for bankd.
//
// It wraps log/slog so every component logs consistently. Components accept
// a *slog.Logger in their constructor or options; when none is provided
// they fall back to logging.Nop().
package logging
