// Package staleaudit periodically moves APPROVED translations whose recorded
// source hash no longer matches their string unit to STALE. It catches rows
// written by tooling that bypassed the string unit save path.
package staleaudit

import (
	"context"
	"fmt"
	"time"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
)

// Config holds configuration for the stale audit worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	RunOnStart     bool          `mapstructure:"run_on_start"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		WorkerInterval: time.Hour,
	}
}

type Worker struct {
	repo dependency.Repository
	c    *Config
	ctx  context.Context
	stop context.CancelFunc
	done chan struct{}
}

// New creates a new stale audit worker.
func New(c *Config, repo dependency.Repository) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Hour
	}
	return &Worker{
		repo: repo,
		c:    c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("stale audit worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker and waits for a running sweep to finish.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("stale audit worker already stopped or not started")
	}
	w.stop()
	<-w.done
	w.stop = nil
	w.ctx = nil
	return nil
}
