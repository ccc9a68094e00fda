package send

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/pmorris/wsend/internal/core"
)

// readLines reads the whole file into memory, split into lines with their
// terminators preserved. A final line without a trailing newline is kept
// as-is. An empty file yields zero lines.
func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	var lines [][]byte
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, &core.FileAccessError{Path: path, Err: err}
		}
	}
}
