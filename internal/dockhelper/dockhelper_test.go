package dockhelper

import (
	"bufio"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trws/chunkwm-tiling/internal/region"
)

func newTestClient(t *testing.T) (*Client, <-chan string) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "dock.sock")
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close(); os.Remove(socketPath) })

	lines := make(chan string, 4)
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			line, err := bufio.NewReader(conn).ReadString('\n')
			if err == nil {
				lines <- line
			}
			conn.Close()
		}
	}()

	return &Client{socketPath: socketPath, timeout: 2 * time.Second}, lines
}

func TestNotifyWindowMoveSendsExpectedLine(t *testing.T) {
	c, lines := newTestClient(t)
	if err := c.NotifyWindowMove(42, region.IntRect{X: 1, Y: 2, Width: 3, Height: 4}); err != nil {
		t.Fatalf("NotifyWindowMove: %v", err)
	}
	select {
	case line := <-lines:
		if line != "window_move 1 2 3 4 42\n" {
			t.Fatalf("unexpected line: %q", line)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dock helper message")
	}
}

func TestNotifyWindowStickySendsBooleanAsDigit(t *testing.T) {
	c, lines := newTestClient(t)
	if err := c.NotifyWindowSticky(9, true); err != nil {
		t.Fatalf("NotifyWindowSticky: %v", err)
	}
	select {
	case line := <-lines:
		if line != "window_sticky 9 1\n" {
			t.Fatalf("unexpected line: %q", line)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dock helper message")
	}
}

func TestSendFailsGracefullyWithoutAListener(t *testing.T) {
	c := &Client{socketPath: filepath.Join(t.TempDir(), "missing.sock"), timeout: 200 * time.Millisecond}
	if err := c.NotifyWindowLevel(1, 0); err == nil {
		t.Fatal("expected an error connecting to a nonexistent dock helper socket")
	}
}
