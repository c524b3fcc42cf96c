package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/surge-downloader/dlhist/internal/sim"
	"github.com/surge-downloader/dlhist/internal/tui/colors"
)

// DownloadStatus is the display side of a simulated download's state
type DownloadStatus int

const (
	StatusDownloading DownloadStatus = iota
	StatusComplete
	StatusFailed
)

// statusInfo holds the display properties for each status
type statusInfo struct {
	icon  string
	label string
	color lipgloss.Color
}

var statusMap = map[DownloadStatus]statusInfo{
	StatusDownloading: {"⬇", "Downloading", colors.StateDownloading},
	StatusComplete:    {"✔", "Completed", colors.StateDone},
	StatusFailed:      {"✖", "Failed", colors.StateError},
}

// StatusOf maps a simulation state onto its display status
func StatusOf(s sim.State) DownloadStatus {
	switch s {
	case sim.StateComplete:
		return StatusComplete
	case sim.StateFailed:
		return StatusFailed
	default:
		return StatusDownloading
	}
}

// Icon returns the status icon
func (s DownloadStatus) Icon() string {
	if info, ok := statusMap[s]; ok {
		return info.icon
	}
	return "?"
}

// Label returns the status label
func (s DownloadStatus) Label() string {
	if info, ok := statusMap[s]; ok {
		return info.label
	}
	return "Unknown"
}

// Color returns the status color
func (s DownloadStatus) Color() lipgloss.Color {
	if info, ok := statusMap[s]; ok {
		return info.color
	}
	return colors.Gray
}

// Render returns the styled icon + label combination
func (s DownloadStatus) Render() string {
	return lipgloss.NewStyle().Foreground(s.Color()).Render(s.Icon() + " " + s.Label())
}

// RenderCount returns the styled icon, a grouped count and the label,
// e.g. "✔ 1,204 Completed"
func (s DownloadStatus) RenderCount(n int) string {
	return lipgloss.NewStyle().Foreground(s.Color()).Render(s.Icon() + " " + humanize.Comma(int64(n)) + " " + s.Label())
}

// RenderStats renders one count per status, separated by two spaces
func RenderStats(st sim.Stats) string {
	return StatusDownloading.RenderCount(st.Downloading) + "  " +
		StatusComplete.RenderCount(st.Complete) + "  " +
		StatusFailed.RenderCount(st.Failed)
}
