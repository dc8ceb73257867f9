// Package engine is the PathEngine orchestrator: it owns the graph and
// every pkg/pathengine table, wires structured logging, and exposes the
// load-time construction path and the persistence-facing snapshot path.
package engine

import (
	"go.uber.org/zap"

	"github.com/Flyecnu/network-simulation3/pkg/pathengine"
)

// EngineConfig configures a PathEngine. Zero value is invalid; use
// DefaultEngineConfig and Option funcs.
type EngineConfig struct {
	// PathCacheCapacity bounds the per-service FIFO PathCache depth.
	PathCacheCapacity int
	// SnapshotCacheSize bounds the ARC-backed memoization of Snapshot().
	SnapshotCacheSize int
	// Logger receives structured event records. A nil Logger is replaced
	// with zap.NewNop() at construction time.
	Logger *zap.Logger
}

// Option mutates an EngineConfig under construction.
type Option func(*EngineConfig)

// WithLogger overrides the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *EngineConfig) { c.Logger = l }
}

// WithPathCacheCapacity overrides the per-service PathCache depth.
func WithPathCacheCapacity(n int) Option {
	return func(c *EngineConfig) { c.PathCacheCapacity = n }
}

// WithSnapshotCacheSize overrides the snapshot memoization cache size.
func WithSnapshotCacheSize(n int) Option {
	return func(c *EngineConfig) { c.SnapshotCacheSize = n }
}

// DefaultEngineConfig returns the documented defaults, then applies opts.
func DefaultEngineConfig(opts ...Option) *EngineConfig {
	c := &EngineConfig{
		PathCacheCapacity: pathengine.DefaultPathCacheCapacity,
		SnapshotCacheSize: 8,
		Logger:            nil,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
