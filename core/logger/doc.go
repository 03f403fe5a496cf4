// Package logger provides structured logging built on zap.
//
// The logger is configured through the central config (level and format) and
// replaced into zap's globals at startup so every package can rely on the
// same encoder settings.
//
// # Request Tracing
//
// WithRayID attaches the per-request ray id (set by the rayid middleware) to
// a logger, so every line emitted while serving a request can be correlated.
package logger
