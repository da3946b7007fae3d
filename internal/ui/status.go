package ui

import (
	"fmt"
	"strings"
	"time"

	"shaderquad/internal/core"
)

// Status is the driver state shown by the overlay.
type Status struct {
	State string
	FPS   float64
	Frame core.FrameState
	Err   error
}

// Lines formats s for display, one value per line.
func (s Status) Lines() []string {
	if s.Err != nil {
		return []string{"setup failed:", s.Err.Error()}
	}
	f := s.Frame
	return []string{
		fmt.Sprintf("state   %s", s.State),
		fmt.Sprintf("fps     %.1f", s.FPS),
		fmt.Sprintf("pointer %.0f, %.0f", f.Pointer.X, f.Pointer.Y),
		fmt.Sprintf("size    %d x %d", f.Size.W, f.Size.H),
		fmt.Sprintf("time    %.0f ms", f.Time),
		fmt.Sprintf("delta   %s", f.Delta.Round(100*time.Microsecond)),
	}
}

// wrap splits lines at embedded newlines and breaks them every cols runes.
func wrap(lines []string, cols int) []string {
	if cols <= 0 {
		return lines
	}
	var out []string
	for _, l := range lines {
		for _, part := range strings.Split(l, "\n") {
			runes := []rune(part)
			for len(runes) > cols {
				out = append(out, string(runes[:cols]))
				runes = runes[cols:]
			}
			out = append(out, string(runes))
		}
	}
	return out
}
