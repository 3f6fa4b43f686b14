package ui

import (
	"runtime"
)

// ANSI Color codes
const (
	colorReset = "\033[0m"

	colorBrightRed    = "\033[91m"
	colorBrightYellow = "\033[93m"
)

// Colorize wraps text in an ANSI color. Windows consoles get plain text.
func Colorize(text, color string) string {
	if runtime.GOOS == "windows" {
		return text
	}

	return color + text + colorReset
}

func BrightRed(text string) string    { return Colorize(text, colorBrightRed) }
func BrightYellow(text string) string { return Colorize(text, colorBrightYellow) }

// Shortcuts for diagnostics written to stderr
func Error(text string) string   { return BrightRed("❌ " + text) }
func Warning(text string) string { return BrightYellow("⚠️  " + text) }
