// Package detector provides environment detection for output mode selection.
package detector

import (
	"io"
	"os"

	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for command output.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty forces colored output.
	ModePretty
	// ModePlain forces output without escape sequences.
	ModePlain
)

func (m OutputMode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

type fileDescriptor interface {
	Fd() uintptr
}

// DetectEnvironment returns the recommended output mode for w.
// Writers that are not terminals, and any run with CI set, get ModePlain.
func DetectEnvironment(w io.Writer) OutputMode {
	f, ok := w.(fileDescriptor)
	isTTY := ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in an int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModePretty
}

// ParseMode converts a user flag value into an OutputMode.
// The empty string is treated as "auto".
func ParseMode(userFlag string) (OutputMode, error) {
	switch userFlag {
	case "pretty":
		return ModePretty, nil
	case "plain":
		return ModePlain, nil
	case "auto", "":
		return ModeAuto, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "mode", userFlag)
	}
}

// ResolveMode applies user override flag to auto-detection.
// Unknown flag values fall back to autoDetected.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	mode, err := ParseMode(userFlag)
	if err != nil || mode == ModeAuto {
		return autoDetected
	}
	return mode
}
