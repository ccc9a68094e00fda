package ws

import (
	"context"

	"github.com/pmorris/wsend/internal/core"

	"github.com/coder/websocket"
)

// Config holds the configuration for a send session.
type Config struct {
	Conn      *websocket.Conn
	Lines     [][]byte
	Stderr    *core.Printer
	Verbosity core.Verbosity
}

// Send transmits each line as its own websocket text message, in order. Every
// write completes (or fails) before the next one begins; there is no
// pipelining and no retry. A mid-stream failure reports how many of the lines
// the endpoint has received.
func Send(ctx context.Context, cfg Config) error {
	for i, line := range cfg.Lines {
		if cfg.Verbosity >= core.VExtraVerbose {
			cfg.Stderr.WriteSendPrefix()
			cfg.Stderr.Write(line)
			cfg.Stderr.Flush()
		}

		err := cfg.Conn.Write(ctx, websocket.MessageText, line)
		if err != nil {
			return &core.TransmissionError{
				Sent:  i,
				Total: len(cfg.Lines),
				Err:   err,
			}
		}
	}
	return nil
}
