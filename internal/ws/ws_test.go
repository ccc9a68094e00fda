package ws

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pmorris/wsend/internal/core"

	"github.com/coder/websocket"
)

// captureServer records every message received on a connection and signals
// on done when the connection ends.
type captureServer struct {
	mu   sync.Mutex
	msgs [][]byte
	done chan struct{}
}

func (c *captureServer) messages() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.msgs...)
}

func newCaptureServer(t *testing.T) (*httptest.Server, *captureServer) {
	t.Helper()
	capture := &captureServer{done: make(chan struct{}, 4)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				capture.done <- struct{}{}
				return
			}
			capture.mu.Lock()
			capture.msgs = append(capture.msgs, data)
			capture.mu.Unlock()
		}
	}))
	t.Cleanup(server.Close)
	return server, capture
}

func awaitDone(t *testing.T, capture *captureServer) {
	t.Helper()
	select {
	case <-capture.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the server to observe the close")
	}
}

func TestSendLinesInOrder(t *testing.T) {
	server, capture := newCaptureServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.CloseNow()

	lines := [][]byte{[]byte("a\n"), []byte("b\n"), []byte("c\n")}
	handle := core.NewHandle(core.ColorOff)
	err = Send(ctx, Config{
		Conn:      conn,
		Lines:     lines,
		Stderr:    handle.Stderr(),
		Verbosity: core.VNormal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn.Close(websocket.StatusNormalClosure, "")
	awaitDone(t, capture)

	got := capture.messages()
	if len(got) != len(lines) {
		t.Fatalf("received %d messages, want %d", len(got), len(lines))
	}
	for i, want := range lines {
		if !bytes.Equal(got[i], want) {
			t.Errorf("message %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestSendNoLines(t *testing.T) {
	server, capture := newCaptureServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.CloseNow()

	handle := core.NewHandle(core.ColorOff)
	err = Send(ctx, Config{
		Conn:      conn,
		Stderr:    handle.Stderr(),
		Verbosity: core.VNormal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn.Close(websocket.StatusNormalClosure, "")
	awaitDone(t, capture)

	if got := capture.messages(); len(got) != 0 {
		t.Fatalf("received %d messages, want 0", len(got))
	}
}

func TestSendClosedConn(t *testing.T) {
	server, _ := newCaptureServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	conn.CloseNow()

	handle := core.NewHandle(core.ColorOff)
	err = Send(ctx, Config{
		Conn:      conn,
		Lines:     [][]byte{[]byte("a\n"), []byte("b\n")},
		Stderr:    handle.Stderr(),
		Verbosity: core.VNormal,
	})

	var txErr *core.TransmissionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected TransmissionError, got: %v", err)
	}
	if txErr.Sent != 0 {
		t.Fatalf("Sent = %d, want 0", txErr.Sent)
	}
	if txErr.Total != 2 {
		t.Fatalf("Total = %d, want 2", txErr.Total)
	}
}

func TestWaitForEnter(t *testing.T) {
	if err := WaitForEnter(strings.NewReader("\n")); err != nil {
		t.Fatalf("newline: unexpected error: %v", err)
	}
	if err := WaitForEnter(strings.NewReader("discarded content\n")); err != nil {
		t.Fatalf("content: unexpected error: %v", err)
	}
	// EOF without a newline also releases the gate.
	if err := WaitForEnter(strings.NewReader("")); err != nil {
		t.Fatalf("eof: unexpected error: %v", err)
	}
}
