// Package platform describes what the current execution context can do.
//
// Code that touches the clipboard or persistent storage receives an Env and
// checks it first instead of probing for globals at call time.
package platform

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// HeadlessEnvVar forces a non-interactive Env when set to a truthy value.
const HeadlessEnvVar = "SIDEBYSIDE_HEADLESS"

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Env lists platform capabilities.
type Env struct {
	Interactive bool
	Clipboard   bool
}

// Headless is an Env with no interactive capabilities.
func Headless() Env {
	return Env{}
}

// Interactive is an Env with every capability enabled.
func Interactive() Env {
	return Env{Interactive: true, Clipboard: true}
}

// Detect inspects the process: it is interactive when stdin or stdout is a
// terminal and HeadlessEnvVar is not set.
func Detect() Env {
	if isTruthy(os.Getenv(HeadlessEnvVar)) {
		return Headless()
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd())) || term.IsTerminal(int(os.Stdout.Fd()))
	return Env{Interactive: interactive, Clipboard: interactive}
}

// Size returns the terminal size, or 80x24 when it cannot be determined.
func (e Env) Size() (width, height int) {
	if !e.Interactive {
		return fallbackWidth, fallbackHeight
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
