// Package ui provides terminal capability detection and the lipgloss
// styles used by the CLI report output.
package ui

import (
	"os"
	"runtime"
	"sync"

	"golang.org/x/term"
)

var (
	stdoutOnce sync.Once
	stdoutTTY  bool

	unicodeOnce sync.Once
	unicodeOK   bool
)

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// Writers fall back to plain, uncolored output when it is not.
func StdoutIsTerminal() bool {
	stdoutOnce.Do(func() {
		stdoutTTY = term.IsTerminal(int(os.Stdout.Fd()))
	})
	return stdoutTTY
}

// UnicodeTerminal reports whether stdout can render Unicode glyphs.
// False when output is piped, TERM is "dumb", or on Windows outside
// Windows Terminal (legacy conhost fonts lack the glyphs).
func UnicodeTerminal() bool {
	unicodeOnce.Do(func() {
		if os.Getenv("TERM") == "dumb" {
			return
		}
		if !StdoutIsTerminal() {
			return
		}
		if runtime.GOOS == "windows" {
			// Windows Terminal sets WT_SESSION; legacy conhost does not.
			unicodeOK = os.Getenv("WT_SESSION") != ""
			return
		}
		unicodeOK = true
	})
	return unicodeOK
}

// Icon returns unicode when the terminal supports it, ascii otherwise.
// Use at every call site that renders special characters:
// ui.Icon("✓", "[ok]")
func Icon(unicode, ascii string) string {
	if UnicodeTerminal() {
		return unicode
	}
	return ascii
}
