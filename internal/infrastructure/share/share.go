// Package share delivers order summaries outside the app. The platform
// share sheet of the original app is replaced by writers the CLI can use.
package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dulcestock/internal/domain/order"
)

// Console writes the shared text to an io.Writer, by default stdout.
type Console struct {
	w io.Writer
}

// NewConsole creates a console sharer.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Share implements order.Sharer.
func (c *Console) Share(_ context.Context, title, body string) error {
	_, err := fmt.Fprintf(c.w, "%s\n\n%s", title, body)
	return err
}

// File writes each shared text to a timestamped file in a directory, so the
// summary can be attached to a message from another program.
type File struct {
	dir string
}

// NewFile creates a file sharer rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Share implements order.Sharer.
func (f *File) Share(_ context.Context, title, body string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s.txt", slug(title), time.Now().Format("20060102-150405"))
	return os.WriteFile(filepath.Join(f.dir, name), []byte(body), 0o644)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
}

var (
	_ order.Sharer = (*Console)(nil)
	_ order.Sharer = (*File)(nil)
)
