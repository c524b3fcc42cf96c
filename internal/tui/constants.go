package tui

import "time"

const (
	// FrameInterval paces the frame clock, about 60 frames per second
	FrameInterval = 16 * time.Millisecond

	// A terminal cell stands in for this many page pixels
	CellWidth  = 8
	CellHeight = 16

	// WheelStep is the scroll distance of one wheel notch in pixels
	WheelStep = 3 * CellHeight

	// MaxFPS bounds the headless frame rate; a frame step must stay a
	// whole number of nanoseconds well above zero
	MaxFPS = 1000

	// Thumb spring tuning
	ThumbFrequency = 7.0
	ThumbDamping   = 0.9
)
