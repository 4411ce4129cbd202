package adapters

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"runfile/internal/ports"
	"runfile/internal/types"
)

// AnnouncerConsoleAdapter renders update notices on the console. Writes
// go to stderr so script output on stdout stays clean.
type AnnouncerConsoleAdapter struct {
	Out io.Writer
}

func NewAnnouncerConsoleAdapter() AnnouncerConsoleAdapter {
	return AnnouncerConsoleAdapter{Out: os.Stderr}
}

// LegacyUpdate prints the update-available notice. No budget applies;
// the caller decides whether a candidate exists at all.
func (a AnnouncerConsoleAdapter) LegacyUpdate(rel types.Release, installed string) error {
	yellow := color.New(color.FgYellow)
	if _, err := yellow.Fprintf(a.writer(), "  • Update available: %s (installed %s)\n", rel.Tag, installed); err != nil {
		return err
	}
	if rel.HTMLURL == "" {
		return nil
	}
	_, err := yellow.Fprintf(a.writer(), "    %s\n", rel.HTMLURL)
	return err
}

// UpcomingMajor prints the next-major notice. An empty body selects the
// built-in template; a non-empty body (asset override) is printed
// verbatim.
func (a AnnouncerConsoleAdapter) UpcomingMajor(rel types.Release, body string) error {
	cyan := color.New(color.FgHiCyan)
	if body != "" {
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		_, err := cyan.Fprint(a.writer(), body)
		return err
	}
	if _, err := cyan.Fprintf(a.writer(), "  • The next major version of %s is here: %s\n", types.PackageName, rel.Tag); err != nil {
		return err
	}
	if rel.HTMLURL == "" {
		return nil
	}
	_, err := cyan.Fprintf(a.writer(), "    %s\n", rel.HTMLURL)
	return err
}

func (a AnnouncerConsoleAdapter) writer() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stderr
}

var _ ports.AnnouncerPort = AnnouncerConsoleAdapter{}
