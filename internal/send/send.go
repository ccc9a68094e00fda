package send

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pmorris/wsend/internal/client"
	"github.com/pmorris/wsend/internal/core"
	"github.com/pmorris/wsend/internal/ws"

	"github.com/coder/websocket"
)

// Request represents a single send run.
type Request struct {
	FilePath      string
	URL           *url.URL
	Insecure      bool
	Timeout       time.Duration
	PrinterHandle *core.Handle
	Verbosity     core.Verbosity

	// Stdin is the reader for the post-send wait gate; main passes
	// os.Stdin.
	Stdin io.Reader
}

// Send performs the run, writing any error to stderr, and returns the exit
// status. None of the failure modes are recovered: every error propagates
// here and terminates the run.
func Send(ctx context.Context, r *Request) int {
	err := send(ctx, r)
	if err != nil {
		p := r.PrinterHandle.Stderr()
		core.WriteErrorMsg(p, err)
		return 1
	}
	return 0
}

func send(ctx context.Context, r *Request) error {
	errPrinter := r.PrinterHandle.Stderr()

	// Materialize the file in memory before any network activity.
	lines, err := readLines(r.FilePath)
	if err != nil {
		return err
	}

	if r.Insecure && r.Verbosity >= core.VNormal {
		core.WriteWarningMsg(errPrinter, "TLS certificate verification is disabled")
	}

	// Apply the timeout to the handshake only; sends and the wait gate
	// run without one.
	dialCtx := ctx
	if r.Timeout > 0 {
		var cancelDial context.CancelFunc
		dialCtx, cancelDial = context.WithTimeout(ctx, r.Timeout)
		defer cancelDial()
	}

	c := client.NewClient(client.ClientConfig{Insecure: r.Insecure})
	opts := &websocket.DialOptions{
		HTTPClient: c.HTTPClient(),
		HTTPHeader: http.Header{"User-Agent": []string{core.UserAgent}},
	}

	conn, _, err := websocket.Dial(dialCtx, r.URL.String(), opts)
	if err != nil {
		return &core.ConnectionError{URL: r.URL.String(), Err: err}
	}
	defer conn.CloseNow()
	defer conn.Close(websocket.StatusNormalClosure, "")

	if r.Verbosity >= core.VVerbose {
		writeInfoLine(errPrinter, "connected to "+r.URL.String())
	}

	err = ws.Send(ctx, ws.Config{
		Conn:      conn,
		Lines:     lines,
		Stderr:    errPrinter,
		Verbosity: r.Verbosity,
	})
	if err != nil {
		return err
	}

	if r.Verbosity >= core.VVerbose {
		writeInfoLine(errPrinter, fmt.Sprintf("sent %d messages, press enter to exit", len(lines)))
	}

	// Run the gate in a goroutine: a blocking stdin read cannot be
	// interrupted, so a caught signal has to win the select instead.
	gateDone := make(chan error, 1)
	go func() {
		gateDone <- ws.WaitForEnter(r.Stdin)
	}()

	select {
	case err := <-gateDone:
		return err
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

func writeInfoLine(p *core.Printer, msg string) {
	p.WriteInfoPrefix()
	p.WriteString(msg)
	p.WriteString("\n")
	p.Flush()
}
