package session

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isInteractive reports whether key events can be read from r. A nil
// reader means stdin. Readers that are not files are trusted as-is.
func isInteractive(r io.Reader) bool {
	if r == nil {
		r = os.Stdin
	}
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
