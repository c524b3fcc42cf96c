package sim

import "math"

// Smoothstep is the cubic ease 3t²-2t³ of x normalised to [edge0, edge1]
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Lerp interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Growth decides how many items to create per tick: a fast burst that
// eases into a trickle, then nothing once the cap is reached.
type Growth struct {
	fast, slow float64
	ramp       float64
	limit      int
	created    int
}

func NewGrowth(cfg Config) *Growth {
	return &Growth{
		fast:  cfg.FastRate,
		slow:  cfg.SlowRate,
		ramp:  cfg.RampSeconds,
		limit: cfg.TotalCap,
	}
}

// Rate is the creation rate in items/sec at elapsed seconds
func (g *Growth) Rate(elapsed float64) float64 {
	return Lerp(g.fast, g.slow, Smoothstep(0, g.ramp, elapsed))
}

// Next returns the number of items to create for a tick of dt seconds and
// counts them as created. At least one item is created per tick until the
// cap is reached; after that Next always returns 0.
func (g *Growth) Next(elapsed, dt float64) int {
	if g.created >= g.limit {
		return 0
	}
	n := int(math.Floor(g.Rate(elapsed) * dt))
	n = max(n, 1)
	n = min(n, g.limit-g.created)
	g.created += n
	return n
}

// Reserve counts up to n items created outside the schedule (the seed
// batch) and returns how many fit under the cap.
func (g *Growth) Reserve(n int) int {
	n = max(0, min(n, g.limit-g.created))
	g.created += n
	return n
}

func (g *Growth) Created() int { return g.created }
func (g *Growth) Limit() int   { return g.limit }

// Exhausted reports whether the cap has been reached
func (g *Growth) Exhausted() bool { return g.created >= g.limit }
