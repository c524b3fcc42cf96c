package sim

import "fmt"

var (
	extensions = []string{"pdf", "zip", "png", "jpg", "docx", "pptx", "csv", "svg"}
	leadWords  = []string{"BMO", "Internal", "Confidential", "Client", "Design"}
	tailWords  = []string{"Final", "Approved", "v2", "v3", "(1)", "(2)", "2025", "Archive", "Review", "adrianna+ben pics"}
)

const (
	minSizeMB = 0.2
	maxSizeMB = 2200.0
)

// Generator fabricates download records. Id allocation is up to the caller.
type Generator struct {
	cfg Config
	rng Source
}

func NewGenerator(cfg Config, rng Source) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// New returns a fresh item. Seed items look like they were already in
// flight when the page opened.
func (g *Generator) New(id int, seed bool) Item {
	lead := pick(g.rng, leadWords)
	tail := pick(g.rng, tailWords)
	ext := pick(g.rng, extensions)

	it := Item{
		ID:     id,
		Ext:    ext,
		Name:   fmt.Sprintf("%s %s %04d.%s", lead, tail, g.rng.IntN(9999), ext),
		SizeMB: uniform(g.rng, minSizeMB, maxSizeMB),
		State:  StateDownloading,
		DoneAt: -1,
	}

	if seed {
		it.Progress = uniform(g.rng, 0.05, 0.85)
		it.Speed = uniform(g.rng, 0.03, 0.22)
		if chance(g.rng, g.cfg.SeedCompleteChance) {
			it.State = StateComplete
			it.Progress = 1
		}
		if chance(g.rng, g.cfg.SeedFailChance) {
			it.State = StateFailed
			it.Progress = uniform(g.rng, 0.2, 0.8)
		}
		return it
	}

	it.Progress = uniform(g.rng, 0, 0.12)
	it.Speed = uniform(g.rng, 0.06, 0.34)
	it.ShowFrom = chance(g.rng, g.cfg.ShowFromChance)
	return it
}
