package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

// SpawnTimer is a repeating timer driven by elapsed seconds.
type SpawnTimer struct {
	Period  float64
	elapsed float64
}

// Advance adds dt and reports whether the timer fired.
// It fires at most once per call. Whole periods beyond the first are
// dropped, only the fractional overshoot carries into the next period.
func (t *SpawnTimer) Advance(dt float64) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.Period {
		t.elapsed = math.Mod(t.elapsed, t.Period)
		return true
	}
	return false
}

// Elapsed returns the time accumulated toward the next firing.
func (t SpawnTimer) Elapsed() float64 {
	return t.elapsed
}

// Streamer spawns platforms ahead of the body and culls those that leave
// the window around it.
type Streamer struct {
	cfg config.HopperPlatforms
	rng *rand.Rand
}

// NewStreamer creates a streamer with its own seeded RNG.
func NewStreamer(cfg config.HopperPlatforms, seed int64) *Streamer {
	return &Streamer{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Seed places the starting platform beneath x at the bottom of the spawn band.
// The starting platform carries no reward.
func (s *Streamer) Seed(cs *Colliders, x float64) Handle {
	c := s.platform(x, s.cfg.BandMin)
	c.Reward = Reward{}
	return cs.Insert(c)
}

// Cull removes every collider whose x lies outside [x-lead, x+lead].
// Returns the number removed.
func (s *Streamer) Cull(cs *Colliders, x float64) int {
	lo, hi := x-s.cfg.LeadDistance, x+s.cfg.LeadDistance

	var out []Handle
	cs.Each(func(h Handle, c *Collider) {
		if cx := c.Position.X(); cx < lo || cx > hi {
			out = append(out, h)
		}
	})
	for _, h := range out {
		cs.Remove(h)
	}
	return len(out)
}

// Update culls around x, then spawns one platform at x+lead if the timer fires.
func (s *Streamer) Update(cs *Colliders, timer *SpawnTimer, x, dt float64) (spawned bool, culled int) {
	culled = s.Cull(cs, x)

	if timer.Advance(dt) {
		y := s.cfg.BandMin + s.rng.Float64()*(s.cfg.BandMax-s.cfg.BandMin)
		cs.Insert(s.platform(x+s.cfg.LeadDistance, y))
		spawned = true
	}
	return spawned, culled
}

func (s *Streamer) platform(x, y float64) Collider {
	return Collider{
		Position:   mgl64.Vec3{x, y, 0},
		HalfExtent: vec2(s.cfg.HalfExtent),
		Reward:     NewReward(s.cfg.Reward),
	}
}
