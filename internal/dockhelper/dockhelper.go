// Package dockhelper implements the client side of the dock-helper
// protocol: three fixed-shape ASCII lines ("window_move x y w h id",
// "window_level id level", "window_sticky id 0|1") sent to a small
// external process that keeps a desktop dock/panel in sync with the
// tiler's idea of window geometry and z-order. A connection failure is
// tolerated — the dock helper is an optional visual affordance, never
// load-bearing for tiling itself.
package dockhelper

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/runtimepath"
)

// Client is a best-effort dock-helper connection, reopened on each
// call since the helper process may restart independently of the
// daemon.
type Client struct {
	socketPath string
	timeout    time.Duration
	logger     *log.Logger
}

// New creates a dock-helper client bound to the default socket path.
func New(logger *log.Logger) *Client {
	socketPath, err := runtimepath.DockSocketPath()
	if err != nil {
		socketPath = ""
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{socketPath: socketPath, timeout: 2 * time.Second, logger: logger}
}

func (c *Client) send(line string) error {
	if c.socketPath == "" {
		return fmt.Errorf("dock helper socket path unresolved")
	}
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("connect to dock helper: %w", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))
	_, err = conn.Write([]byte(line + "\n"))
	return err
}

// NotifyWindowMove reports a window's new geometry.
func (c *Client) NotifyWindowMove(windowID uint32, r region.IntRect) error {
	return c.send(fmt.Sprintf("window_move %d %d %d %d %d", r.X, r.Y, r.Width, r.Height, windowID))
}

// NotifyWindowLevel reports a window's new stacking level (floating
// windows are raised above tiled ones).
func (c *Client) NotifyWindowLevel(windowID uint32, level int) error {
	return c.send(fmt.Sprintf("window_level %d %d", windowID, level))
}

// NotifyWindowSticky reports a window's sticky (all-desktops) flag.
func (c *Client) NotifyWindowSticky(windowID uint32, sticky bool) error {
	v := 0
	if sticky {
		v = 1
	}
	return c.send(fmt.Sprintf("window_sticky %d %d", windowID, v))
}
