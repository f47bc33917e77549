package sim

import "github.com/go-gl/mathgl/mgl64"

// Reward is a one-shot score grant attached to a collider.
// The zero value carries nothing.
type Reward struct {
	amount  int
	pending bool
}

// NewReward returns a reward worth n points.
func NewReward(n int) Reward {
	return Reward{amount: n, pending: true}
}

// Take hands out the reward exactly once.
func (r *Reward) Take() (int, bool) {
	if !r.pending {
		return 0, false
	}
	n := r.amount
	*r = Reward{}
	return n, true
}

// Pending reports whether the reward is still available.
func (r Reward) Pending() bool {
	return r.pending
}

// Collider is a static platform.
type Collider struct {
	Position   mgl64.Vec3
	HalfExtent mgl64.Vec2
	Reward     Reward
}

// Box returns the collider's bounding box.
func (c Collider) Box() Box {
	return Box{Center: c.Position.Vec2(), Half: c.HalfExtent}
}

// Handle addresses a collider in a Colliders arena.
// A handle goes stale once its collider is removed; the zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

type slot struct {
	collider Collider
	gen      uint32
	live     bool
}

// Colliders is an arena of colliders with stable, generation-checked handles.
// Freed slots are reused; iteration follows slot order.
type Colliders struct {
	slots []slot
	free  []uint32
	count int
}

// Insert adds a collider and returns its handle.
func (cs *Colliders) Insert(c Collider) Handle {
	cs.count++

	if n := len(cs.free); n > 0 {
		idx := cs.free[n-1]
		cs.free = cs.free[:n-1]
		s := &cs.slots[idx]
		s.collider = c
		s.live = true
		return Handle{index: idx, gen: s.gen}
	}

	cs.slots = append(cs.slots, slot{collider: c, gen: 1, live: true})
	return Handle{index: uint32(len(cs.slots) - 1), gen: 1}
}

// Remove deletes the collider behind h. Returns false for stale handles.
func (cs *Colliders) Remove(h Handle) bool {
	s := cs.slot(h)
	if s == nil {
		return false
	}
	s.live = false
	s.gen++
	s.collider = Collider{}
	cs.free = append(cs.free, h.index)
	cs.count--
	return true
}

// Get returns the collider behind h.
func (cs *Colliders) Get(h Handle) (Collider, bool) {
	s := cs.slot(h)
	if s == nil {
		return Collider{}, false
	}
	return s.collider, true
}

// Len returns the number of live colliders.
func (cs *Colliders) Len() int {
	return cs.count
}

// Each calls fn for every live collider in slot order.
// fn may mutate the collider but must not insert or remove.
func (cs *Colliders) Each(fn func(h Handle, c *Collider)) {
	for i := range cs.slots {
		s := &cs.slots[i]
		if !s.live {
			continue
		}
		fn(Handle{index: uint32(i), gen: s.gen}, &s.collider)
	}
}

// Snapshot returns a copy of every live collider in slot order.
func (cs *Colliders) Snapshot() []Collider {
	out := make([]Collider, 0, cs.count)
	cs.Each(func(_ Handle, c *Collider) {
		out = append(out, *c)
	})
	return out
}

func (cs *Colliders) slot(h Handle) *slot {
	if int(h.index) >= len(cs.slots) {
		return nil
	}
	s := &cs.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}
