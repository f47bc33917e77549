package sim

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestClampDt(t *testing.T) {
	tests := []struct {
		raw, expected float64
	}{
		{0.016, 0.016}, // normal frame
		{0.2, 0.2},     // at the clamp
		{0.25, 0.2},    // long frame
		{5.0, 0.2},     // debugger pause
		{0, 0},         // no time passed
		{-0.1, 0},      // clock went backwards
	}

	for _, tc := range tests {
		if got := ClampDt(tc.raw, 0.2); got != tc.expected {
			t.Errorf("ClampDt(%v, 0.2) = %v, expected %v", tc.raw, got, tc.expected)
		}
	}
}

func TestIntegrateUsesClampedDt(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		used float64
	}{
		{"short frame", 0.1, 0.1},
		{"exact clamp", 0.2, 0.2},
		{"long frame", 0.5, 0.2},
		{"very long frame", 3.0, 0.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// No gravity so the position delta isolates dt
			b := Body{Velocity: mgl64.Vec2{300, -200}}
			Integrate(&b, 0, tc.dt, 0.2)

			if !approx(b.Position.X(), 300*tc.used) {
				t.Errorf("x delta = %v, expected %v", b.Position.X(), 300*tc.used)
			}
			if !approx(b.Position.Y(), -200*tc.used) {
				t.Errorf("y delta = %v, expected %v", b.Position.Y(), -200*tc.used)
			}
		})
	}
}

func TestIntegrateGravityBeforePosition(t *testing.T) {
	b := Body{Velocity: mgl64.Vec2{0, 0}}
	Integrate(&b, 980, 0.1, 0.2)

	if !approx(b.Velocity.Y(), -98) {
		t.Errorf("vy = %v, expected -98", b.Velocity.Y())
	}
	// Position uses the updated velocity
	if !approx(b.Position.Y(), -9.8) {
		t.Errorf("y = %v, expected -9.8", b.Position.Y())
	}
}

func TestIntegrateGravityMonotonic(t *testing.T) {
	b := Body{Velocity: mgl64.Vec2{283, -283}}
	dt := 1.0 / 60.0

	prev := b.Velocity.Y()
	for i := 0; i < 120; i++ {
		Integrate(&b, 980, dt, 0.2)
		vy := b.Velocity.Y()
		if vy >= prev {
			t.Fatalf("tick %d: vy did not decrease (%v -> %v)", i, prev, vy)
		}
		if !approx(prev-vy, 980*dt) {
			t.Fatalf("tick %d: vy dropped by %v, expected %v", i, prev-vy, 980*dt)
		}
		prev = vy
	}
}

func TestIntegrateZeroDtIsNoop(t *testing.T) {
	b := Body{
		Position: mgl64.Vec3{10, 20, 1},
		Velocity: mgl64.Vec2{5, -5},
	}
	before := b
	for i := 0; i < 3; i++ {
		Integrate(&b, 980, 0, 0.2)
	}
	if b != before {
		t.Errorf("dt=0 changed body: %+v -> %+v", before, b)
	}
}

func TestIntegrateKeepsZ(t *testing.T) {
	b := Body{Position: mgl64.Vec3{0, 0, 1}, Velocity: mgl64.Vec2{1, 1}}
	Integrate(&b, 980, 0.1, 0.2)
	if b.Position.Z() != 1 {
		t.Errorf("z = %v, expected 1", b.Position.Z())
	}
}

func TestClockDelta(t *testing.T) {
	var c Clock
	t0 := time.Unix(100, 0)

	if d := c.Delta(t0); d != 0 {
		t.Errorf("first Delta = %v, expected 0", d)
	}
	if d := c.Delta(t0.Add(250 * time.Millisecond)); !approx(d, 0.25) {
		t.Errorf("Delta = %v, expected 0.25", d)
	}
	if d := c.Delta(t0); d != 0 {
		t.Errorf("backwards Delta = %v, expected 0", d)
	}

	c.Reset()
	if d := c.Delta(t0.Add(time.Hour)); d != 0 {
		t.Errorf("Delta after Reset = %v, expected 0", d)
	}
}
