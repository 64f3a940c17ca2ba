// Package output creates terminal outputs and renderers that honor NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile detected from the environment.
// NO_COLOR forces the Ascii profile.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output writing to w. A nil writer means os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Renderer creates a lipgloss renderer for w using the same color profile rules as New.
func Renderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stderr
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())
	return r
}
