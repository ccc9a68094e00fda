package send

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pmorris/wsend/internal/core"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    [][]byte
	}{
		{
			name:    "terminators preserved",
			content: "a\nb\nc\n",
			want:    [][]byte{[]byte("a\n"), []byte("b\n"), []byte("c\n")},
		},
		{
			name:    "no trailing newline",
			content: "a\nb",
			want:    [][]byte{[]byte("a\n"), []byte("b")},
		},
		{
			name:    "blank lines kept",
			content: "\n\nx\n",
			want:    [][]byte{[]byte("\n"), []byte("\n"), []byte("x\n")},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lines.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := readLines(path)
			if err != nil {
				t.Fatalf("readLines() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if !bytes.Equal(got[i], tt.want[i]) {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := readLines(filepath.Join(t.TempDir(), "missing.txt"))

	var fileErr *core.FileAccessError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected FileAccessError, got: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got: %v", err)
	}
}
