package sim

// Simulator advances downloading items and resolves them into a terminal
// state. Items never look at each other, so the order of updates is free.
type Simulator struct {
	cfg Config
	rng Source
}

func NewSimulator(cfg Config, rng Source) *Simulator {
	return &Simulator{cfg: cfg, rng: rng}
}

// Advance moves one item forward by dt seconds. It returns true when the
// item reached a terminal state on this call.
func (p *Simulator) Advance(it *Item, dt, elapsed float64) bool {
	if it.State.Terminal() {
		return false
	}

	it.Progress = clamp(it.Progress+it.Speed*dt, 0, 1)

	if chance(p.rng, p.cfg.JitterChance) {
		it.Speed *= uniform(p.rng, p.cfg.JitterMin, p.cfg.JitterMax)
	}
	it.Speed = clamp(it.Speed, p.cfg.SpeedMin, p.cfg.SpeedMax)

	if it.Progress < 1 {
		return false
	}
	it.Progress = 1
	if chance(p.rng, p.cfg.FailChance) {
		it.State = StateFailed
	} else {
		it.State = StateComplete
	}
	it.DoneAt = elapsed
	return true
}

// Step advances every item in the store and returns how many finished
func (p *Simulator) Step(s *Store, dt, elapsed float64) (finished int) {
	s.Each(func(_ int, it *Item) {
		if p.Advance(it, dt, elapsed) {
			finished++
		}
	})
	return finished
}
