package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// WindowLister returns every window id currently live on the window
// system, across every display and desktop.
type WindowLister func() ([]uint32, error)

// ReconcilerConfig holds configuration for the reconciler.
type ReconcilerConfig struct {
	Interval time.Duration
	Logger   *slog.Logger
}

// Reconciler periodically checks the tiling registry for windows whose
// backing window no longer exists — closed out from under a tree leaf
// by some path other than the command channel — and repairs it.
type Reconciler struct {
	interval    time.Duration
	registry    *workspace.Registry
	sync        *StateSynchronizer
	listWindows WindowLister
	logger      *slog.Logger
}

// NewReconciler creates a new reconciler with the given configuration.
func NewReconciler(cfg ReconcilerConfig, registry *workspace.Registry, sync *StateSynchronizer, listWindows WindowLister) *Reconciler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &Reconciler{
		interval:    interval,
		registry:    registry,
		sync:        sync,
		listWindows: listWindows,
		logger:      cfg.Logger,
	}
}

// Run starts the reconciliation loop. Blocks until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.reconcile()
		}
	}
}

// reconcile performs a single reconciliation pass.
func (r *Reconciler) reconcile() {
	defer func() {
		if err := recover(); err != nil {
			r.logger.Error("reconciler panic recovered", "error", err)
		}
	}()

	expected := r.expectedWindowIDs()
	if len(expected) == 0 {
		return
	}

	actualWindowIDs, err := r.listWindows()
	if err != nil {
		r.logger.Error("reconciler: failed to list windows", "error", err)
		return
	}
	actual := make(map[uint32]bool, len(actualWindowIDs))
	for _, wid := range actualWindowIDs {
		actual[wid] = true
	}

	for windowID := range expected {
		if !actual[windowID] {
			r.logger.Info("reconciler: orphaned window detected", "window_id", windowID)
			r.sync.HandleWindowClosed(windowID)
		}
	}
}

// expectedWindowIDs collects every window id any space currently binds
// — tiled, monocle, or floating.
func (r *Reconciler) expectedWindowIDs() map[uint32]bool {
	out := make(map[uint32]bool)
	for _, spaceID := range r.registry.Spaces() {
		space, release := r.registry.Acquire(spaceID)

		if space.Tree != nil && !space.Tree.Empty() {
			for _, leaf := range space.Tree.Leaves(space.Tree.Root()) {
				out[space.Tree.Node(leaf).WindowID] = true
			}
		}
		for _, windowID := range space.Monocle.All() {
			out[windowID] = true
		}
		for windowID := range space.FloatWindows {
			out[windowID] = true
		}

		release()
	}
	return out
}

// ReconcileNow triggers an immediate reconciliation pass.
func (r *Reconciler) ReconcileNow() {
	r.reconcile()
}
