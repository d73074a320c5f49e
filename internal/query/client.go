package query

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/trws/chunkwm-tiling/internal/runtimepath"
)

// Client sends one query-channel line per call and returns the
// daemon's formatted response body, or the error line it reported.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a query-channel client bound to the default
// socket path.
func NewClient() *Client {
	socketPath, err := runtimepath.QuerySocketPath()
	if err != nil {
		socketPath = ""
	}
	return &Client{socketPath: socketPath, timeout: 5 * time.Second}
}

// Send transmits line to the daemon and returns its response body.
func (c *Client) Send(line string) (string, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return "", fmt.Errorf("connect to daemon: %w (is it running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := conn.Write([]byte(line)); err != nil {
		return "", fmt.Errorf("send query: %w", err)
	}

	body, err := io.ReadAll(bufio.NewReader(conn))
	if err != nil {
		return "", fmt.Errorf("read daemon reply: %w", err)
	}
	text := string(body)
	if strings.HasPrefix(text, "ERROR ") {
		return "", fmt.Errorf("daemon: %s", strings.TrimSpace(strings.TrimPrefix(text, "ERROR ")))
	}
	return text, nil
}
