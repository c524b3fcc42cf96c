package colors

import "github.com/charmbracelet/lipgloss"

// === Color Palette ===
// Muted browser-dark tones
var (
	Background = lipgloss.Color("#13161b")
	Card       = lipgloss.Color("#2e3136")
	Link       = lipgloss.Color("#aac8ff")
	Accent     = lipgloss.Color("#5aaaff")
	Gray       = lipgloss.Color("#5a5f66") // Borders
	LightGray  = lipgloss.Color("#aaaaaa") // Secondary text
	White      = lipgloss.Color("#e6e6e6")
)

// === Semantic State Colors ===
var (
	StateDownloading = lipgloss.Color("#78aaff")
	StateDone        = lipgloss.Color("#6fcf97")
	StateError       = lipgloss.Color("#ff6b6b")
	Warning          = lipgloss.Color("#f2c94c")
)

// === Graph Colors ===
var GraphGradient = []lipgloss.Color{
	lipgloss.Color("#1f3b66"), // Bottom
	lipgloss.Color("#2f5fa3"),
	lipgloss.Color("#4a86d9"),
	lipgloss.Color("#78aaff"), // Top
}

// === Progress Bar Colors ===
const (
	ProgressStart = "#4a86d9"
	ProgressEnd   = "#aac8ff"
)
