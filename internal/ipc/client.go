package ipc

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/trws/chunkwm-tiling/internal/runtimepath"
)

// Client sends one command-channel line per call and waits for the
// daemon's reply; used by the CLI front-end.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a command-channel client bound to the default
// socket path.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		socketPath = "" // surfaced as a connection error on Send
	}
	return &Client{socketPath: socketPath, timeout: 5 * time.Second}
}

// Send transmits line to the daemon and returns an error built from
// the daemon's "ERROR ..." reply, if any.
func (c *Client) Send(line string) error {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("connect to daemon: %w (is it running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := conn.Write([]byte(line)); err != nil {
		return fmt.Errorf("send command: %w", err)
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read daemon reply: %w", err)
	}
	reply = strings.TrimSuffix(reply, "\n")

	if strings.HasPrefix(reply, "ERROR ") {
		return fmt.Errorf("daemon: %s", strings.TrimPrefix(reply, "ERROR "))
	}
	return nil
}
