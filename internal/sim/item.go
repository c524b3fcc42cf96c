package sim

// State is the lifecycle of a fabricated download.
// Downloading is the only non-terminal state.
type State int

const (
	StateDownloading State = iota
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDownloading:
		return "downloading"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen
func (s State) Terminal() bool {
	return s != StateDownloading
}

// Item is one synthetic download record
type Item struct {
	ID       int
	Name     string
	Ext      string
	SizeMB   float64
	Progress float64 // [0, 1]
	Speed    float64 // progress fraction per second
	State    State
	ShowFrom bool    // show the source origin line instead of the status line
	DoneAt   float64 // elapsed seconds at the terminal transition, -1 if unknown
}
