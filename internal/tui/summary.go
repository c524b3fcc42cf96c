package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/surge-downloader/dlhist/internal/sim"
	"github.com/surge-downloader/dlhist/internal/tui/colors"
	"github.com/surge-downloader/dlhist/internal/tui/components"
)

// RunReport is the outcome of a headless run
type RunReport struct {
	Session  string
	Preset   string
	Duration time.Duration
	FPS      int
	Frames   int

	Created   int
	Cap       int
	StoreLen  int
	Stats     sim.Stats
	PerSecond []float64 // items created in each simulated second

	// the most cards drawn in a single frame
	MaxCardsDrawn int
}

const graphHeight = 8

var (
	labelStyle = lipgloss.NewStyle().Foreground(colors.LightGray).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(colors.White).Bold(true)
)

// RenderSummary lays out a run report for a terminal width columns wide
func RenderSummary(r RunReport, width int) string {
	width = max(width, 40)

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	peak := 0.0
	for _, v := range r.PerSecond {
		peak = max(peak, v)
	}
	graph := components.RenderBarGraph(r.PerSecond, width-2, graphHeight, peak)
	graphBox := components.RenderBox(
		"created per second",
		fmt.Sprintf("peak %s/s", humanize.Comma(int64(peak))),
		graph, width, graphHeight+2, components.AccentBorder,
	)

	bar := progress.New(progress.WithGradient(colors.ProgressStart, colors.ProgressEnd))
	bar.Width = width - 16
	fill := 0.0
	if r.Cap > 0 {
		fill = float64(r.StoreLen) / float64(r.Cap)
	}

	lines := []string{
		row("session", r.Session),
		row("preset", r.Preset),
		row("simulated", fmt.Sprintf("%s at %d fps (%s frames)", r.Duration, r.FPS, humanize.Comma(int64(r.Frames)))),
		row("created", fmt.Sprintf("%s of %s", humanize.Comma(int64(r.Created)), humanize.Comma(int64(r.Cap)))),
		row("states", components.RenderStats(r.Stats)),
		row("drawn/frame", fmt.Sprintf("at most %d cards", r.MaxCardsDrawn)),
		"",
		graphBox,
		"",
		labelStyle.Render("store") + bar.ViewAs(fill),
	}
	return strings.Join(lines, "\n")
}
