// Package render presents rendered grids on a terminal and drives the
// redraw loop around them.
package render

import (
	"os"
	"strings"
)

// Mode selects how frames reach the terminal.
type Mode int

const (
	ModePlain  Mode = iota // Frames written one after another, no escapes
	ModeANSI               // Screen cleared with ANSI escapes before each frame
	ModeScreen             // Full-screen tcell presenter
)

// String returns the name used for the mode in MATR_TERMINAL_MODE.
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeANSI:
		return "ansi"
	case ModeScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. The second result is false for unknown names.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return ModePlain, true
	case "ansi":
		return ModeANSI, true
	case "screen":
		return ModeScreen, true
	}
	return ModePlain, false
}

// TerminalCapabilities describes the terminal frames are presented on.
type TerminalCapabilities struct {
	Name string
	Mode Mode
	UTF8 bool
}

// DetectCapabilities detects the current terminal's capabilities.
func DetectCapabilities() TerminalCapabilities {
	caps := TerminalCapabilities{
		Name: os.Getenv("TERM"),
		Mode: ModeANSI,
		UTF8: detectUTF8Locale(),
	}

	// Allow override via environment variable
	if mode, ok := ParseMode(os.Getenv("MATR_TERMINAL_MODE")); ok {
		caps.Mode = mode
		return caps
	}

	// No escape sequences for dumb terminals or when nothing identifies one
	// (pipes, CI logs).
	if caps.Name == "" || caps.Name == "dumb" {
		caps.Mode = ModePlain
	}

	return caps
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := os.Getenv(env)
		if value == "" {
			continue
		}

		// Handle C.UTF-8, en_US.UTF-8, en_US.UTF-8@euro, etc.
		upper := strings.ToUpper(value)
		if i := strings.Index(upper, "@"); i != -1 {
			upper = upper[:i]
		}
		return strings.HasSuffix(upper, ".UTF-8") || strings.HasSuffix(upper, ".UTF8")
	}

	return false
}
