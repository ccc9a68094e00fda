package ws

import (
	"bufio"
	"errors"
	"io"
)

// WaitForEnter blocks until one line has been read from r, keeping the
// connection open until the operator releases it. The line's content is
// discarded. EOF also releases the gate so that piped stdin shuts the
// session down cleanly.
func WaitForEnter(r io.Reader) error {
	br := bufio.NewReader(r)
	_, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
