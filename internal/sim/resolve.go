package sim

import "math"

// Side indicates which face of a collider the body touched.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Classify tests body against collider and returns the contact side.
// The side is the one with the smallest penetration; ties resolve in the
// order Top, Bottom, Left, Right. Touching edges are not a contact.
func Classify(body, collider Box) Side {
	bMin, bMax := body.Min(), body.Max()
	cMin, cMax := collider.Min(), collider.Max()

	top := cMax.Y() - bMin.Y()    // body came down onto the collider
	bottom := bMax.Y() - cMin.Y() // body came up from underneath
	left := bMax.X() - cMin.X()   // body came in from the left
	right := cMax.X() - bMin.X()  // body came in from the right

	if top <= 0 || bottom <= 0 || left <= 0 || right <= 0 {
		return SideNone
	}

	side, pen := SideTop, top
	if bottom < pen {
		side, pen = SideBottom, bottom
	}
	if left < pen {
		side, pen = SideLeft, left
	}
	if right < pen {
		side = SideRight
	}
	return side
}

// Score is the run's point counter.
type Score int

// ContactReport summarizes one resolver pass.
type ContactReport struct {
	Touching bool // Body overlaps at least one collider
	Contacts int  // Number of colliders touched
	Landed   bool // At least one contact was on a collider's top
	Granted  int  // Points granted this pass
}

// Resolve tests the body against every collider in slot order.
// Each contact grants a pending reward once; a top contact clamps vy to be
// non-negative. Other sides leave velocity untouched. With consume set,
// colliders whose reward was granted are removed after the pass.
func Resolve(body *Body, cs *Colliders, score *Score, consume bool) ContactReport {
	var rep ContactReport
	var spent []Handle
	box := body.Box()

	cs.Each(func(h Handle, c *Collider) {
		side := Classify(box, c.Box())
		if side == SideNone {
			return
		}
		rep.Touching = true
		rep.Contacts++

		if n, ok := c.Reward.Take(); ok {
			*score += Score(n)
			rep.Granted += n
			if consume {
				spent = append(spent, h)
			}
		}

		if side == SideTop {
			rep.Landed = true
			body.Velocity[1] = math.Max(body.Velocity[1], 0)
		}
	})

	for _, h := range spent {
		cs.Remove(h)
	}
	return rep
}
