package sim

// Input is the player's input for one tick.
type Input struct {
	Jump bool // Jump was pressed this tick (edge, not held)
}

// Boost applies the jump impulse when the body is touching any collider
// this tick. Mid-air presses are ignored. Returns whether the impulse was applied.
func Boost(b *Body, in Input, contact ContactReport, impulse float64) bool {
	if !in.Jump || !contact.Touching {
		return false
	}
	b.Velocity[1] += impulse
	return true
}
