// Package style provides the colors and icons shared by the CLI and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Log icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Chunk table markers.
const (
	// InitialChunk marks a chunk loaded with its entrypoint.
	InitialChunk = "●"
	// AsyncChunk marks a chunk loaded on demand.
	AsyncChunk = "○"
	// ChangedChunk marks a chunk whose hash differs from the stored report.
	ChangedChunk = "~"
)

// ChunkColor returns the color of a chunk table row. Changed wins over initial.
func ChunkColor(initial, changed bool) lipgloss.Color {
	switch {
	case changed:
		return Yellow
	case initial:
		return Green
	default:
		return Slate
	}
}
