package ipc

import (
	"errors"
	"testing"
	"time"
)

type fakeExecutor struct {
	lastLine string
	err      error
}

func (f *fakeExecutor) Execute(line string) error {
	f.lastLine = line
	return f.err
}

func newTestServer(t *testing.T, exec Executor) *Server {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	s, err := NewServer(exec)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func TestClientSendDeliversLineAndReportsOK(t *testing.T) {
	exec := &fakeExecutor{}
	newTestServer(t, exec)

	c := NewClient()
	if err := c.Send("focus east"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	// Give the accept goroutine a moment to record the line.
	for i := 0; i < 100 && exec.lastLine == ""; i++ {
		time.Sleep(time.Millisecond)
	}
	if exec.lastLine != "focus east\n" {
		t.Fatalf("executor received %q, want %q", exec.lastLine, "focus east\n")
	}
}

func TestClientSendSurfacesExecutorError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("no window in that direction")}
	newTestServer(t, exec)

	c := NewClient()
	err := c.Send("focus east")
	if err == nil {
		t.Fatal("expected an error from the daemon")
	}
	if err.Error() != "daemon: no window in that direction" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientSendFailsWithoutAServer(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	c := NewClient()
	c.timeout = 200 * time.Millisecond
	if err := c.Send("focus east"); err == nil {
		t.Fatal("expected a connection error with no server listening")
	}
}
