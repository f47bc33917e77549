package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

const frame = 1.0 / 60.0

func newTestWorld(t *testing.T, cfg config.HopperConfig, seed int64) *World {
	t.Helper()
	w, err := NewWorld(cfg, seed)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	cfg.Platforms.SpawnPeriod = 0

	_, err := NewWorld(cfg, 1)
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNewWorldStartsAboveOnePlatform(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	w := newTestWorld(t, cfg, 1)

	b := w.Body()
	if b.Position != (mgl64.Vec3{0, -50, 1}) {
		t.Errorf("spawn position = %v", b.Position)
	}
	if b.Velocity != (mgl64.Vec2{283, -283}) {
		t.Errorf("launch velocity = %v", b.Velocity)
	}

	cs := w.Colliders()
	if len(cs) != 1 {
		t.Fatalf("expected 1 starting platform, got %d", len(cs))
	}
	if cs[0].Position.X() != 0 || cs[0].Position.Y() >= b.Position.Y() {
		t.Errorf("starting platform at %v is not beneath the body", cs[0].Position)
	}
	if w.Score() != 0 || w.Run() != 1 {
		t.Errorf("score = %d, run = %d; expected 0, 1", w.Score(), w.Run())
	}
}

func TestZeroWorldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Tick on an uninitialized world should panic")
		}
	}()
	var w World
	w.Tick(Input{}, frame)
}

func TestNilWorldAccessorsPanicWithMessage(t *testing.T) {
	accessors := map[string]func(w *World){
		"Run":    func(w *World) { w.Run() },
		"Ticks":  func(w *World) { w.Ticks() },
		"Config": func(w *World) { w.Config() },
		"Score":  func(w *World) { w.Score() },
	}

	for name, call := range accessors {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, "world not initialized") {
					t.Errorf("recovered %v, expected the not-initialized panic", r)
				}
			}()
			var w *World
			call(w)
		})
	}
}

// scenarioWorld sets up a body at (0,-50) moving (283,-283) with a single
// 500x30 platform at (250,-200), or no platform at all.
func scenarioWorld(t *testing.T, withPlatform bool) *World {
	t.Helper()
	w := newTestWorld(t, config.DefaultHopperConfig(), 1)
	w.state.Colliders = Colliders{}
	if withPlatform {
		w.state.Colliders.Insert(Collider{
			Position:   mgl64.Vec3{250, -200, 0},
			HalfExtent: mgl64.Vec2{250, 15},
			Reward:     NewReward(10),
		})
	}
	return w
}

func TestScenarioFreeFall(t *testing.T) {
	w := scenarioWorld(t, false)

	prev := w.Body().Velocity.Y()
	for i := 0; i < 30; i++ {
		rep := w.Tick(Input{}, frame)
		if rep.Contact.Touching || rep.Died {
			t.Fatalf("tick %d: unexpected contact or death: %+v", i, rep)
		}
		vy := w.Body().Velocity.Y()
		if !approx(prev-vy, 980*frame) {
			t.Fatalf("tick %d: vy dropped by %v, expected %v", i, prev-vy, 980*frame)
		}
		prev = vy
	}

	// Gravity only ever pushes vy further below zero
	if vy := w.Body().Velocity.Y(); !approx(vy, -283-980*0.5) {
		t.Errorf("vy after 0.5s = %v, expected %v", vy, -283-980*0.5)
	}
}

func TestScenarioLandsOnPlatform(t *testing.T) {
	w := scenarioWorld(t, true)

	landedAt := -1
	for i := 0; i < 30; i++ {
		before := w.Body().Velocity.Y()
		rep := w.Tick(Input{}, frame)
		if rep.Contact.Landed && landedAt < 0 {
			landedAt = i
			if before >= 0 {
				t.Fatalf("body should be falling before it lands, vy = %v", before)
			}
		}
		if rep.Contact.Landed && w.Body().Velocity.Y() < 0 {
			t.Fatalf("tick %d: vy = %v after landing", i, w.Body().Velocity.Y())
		}
	}

	if landedAt < 0 {
		t.Fatal("body never landed within 0.5s")
	}
	b := w.Body()
	if b.Velocity.Y() != 0 {
		t.Errorf("resting vy = %v, expected 0", b.Velocity.Y())
	}
	if b.Position.Y() <= -200 {
		t.Errorf("body sank through the platform, y = %v", b.Position.Y())
	}
	if w.Score() != 10 {
		t.Errorf("score = %d, expected 10 granted once", w.Score())
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	w := scenarioWorld(t, true)

	// Mid-air press on the first tick does nothing
	rep := w.Tick(Input{Jump: true}, frame)
	if rep.Boosted {
		t.Fatal("mid-air jump should be ignored")
	}

	for i := 0; i < 30; i++ {
		w.Tick(Input{}, frame)
	}

	rep = w.Tick(Input{Jump: true}, frame)
	if !rep.Boosted {
		t.Fatal("grounded jump should boost")
	}
	if vy := w.Body().Velocity.Y(); vy != 500 {
		t.Errorf("vy after grounded jump = %v, expected 500", vy)
	}

	// Next tick the body rises off the platform
	w.Tick(Input{}, frame)
	if vy := w.Body().Velocity.Y(); vy <= 0 {
		t.Errorf("body should be rising, vy = %v", vy)
	}
}

func TestDeathResetsAtomically(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	w := newTestWorld(t, cfg, 3)

	// Build up a run with a score and several colliders
	w.state.Score = 40
	for i := 0; i < 4; i++ {
		w.state.Colliders.Insert(platformAt(float64(i*100), -200, 10))
	}
	w.state.Timer.Advance(1.5)
	w.state.Body.Position[1] = -600
	w.state.Body.Velocity = mgl64.Vec2{10, -900}

	rep := w.Tick(Input{}, frame)

	if !rep.Died || rep.FinalScore != 40 || rep.EndedRun != 1 {
		t.Fatalf("report = %+v, expected death with final score 40 on run 1", rep)
	}

	b := w.Body()
	if b.Position != (mgl64.Vec3{cfg.Body.Spawn.X, cfg.Body.Spawn.Y, cfg.Body.Z}) {
		t.Errorf("position = %v, expected spawn point", b.Position)
	}
	if b.Velocity != (mgl64.Vec2{cfg.Physics.LaunchVelocity.X, cfg.Physics.LaunchVelocity.Y}) {
		t.Errorf("velocity = %v, expected launch vector", b.Velocity)
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, expected 0", w.Score())
	}
	if w.Run() != 2 {
		t.Errorf("run = %d, expected 2", w.Run())
	}

	cs := w.Colliders()
	if len(cs) != 1 {
		t.Fatalf("expected exactly one platform after reset, got %d", len(cs))
	}
	if cs[0].Position.X() != cfg.Body.Spawn.X || cs[0].Position.Y() >= cfg.Body.Spawn.Y {
		t.Errorf("platform at %v is not beneath the spawn point", cs[0].Position)
	}
	if w.state.Timer.Elapsed() != frame {
		t.Errorf("timer should restart with the new run, elapsed = %v", w.state.Timer.Elapsed())
	}
}

func TestStreamingWindowHolds(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.LaunchVelocity = config.Vec2{X: 400, Y: 0}
	w := newTestWorld(t, cfg, 11)

	lead := cfg.Platforms.LeadDistance
	spawned := 0
	for i := 0; i < 60*20; i++ {
		rep := w.Tick(Input{}, frame)
		if rep.Died {
			t.Fatalf("tick %d: steady travel should not die", i)
		}
		if rep.Spawned {
			spawned++
		}

		x := w.Body().Position.X()
		for _, c := range w.Colliders() {
			if cx := c.Position.X(); cx < x-lead || cx > x+lead {
				t.Fatalf("tick %d: collider at x=%v outside [%v, %v]", i, cx, x-lead, x+lead)
			}
		}
		if n := len(w.Colliders()); n > 3 {
			t.Fatalf("tick %d: %d live colliders, window should bound the set", i, n)
		}
	}

	// 20 seconds at one platform per 2 seconds
	if spawned < 9 || spawned > 10 {
		t.Errorf("spawned %d platforms in 20s, expected ~10", spawned)
	}
}

func TestScoreGrantedOncePerCollider(t *testing.T) {
	w := scenarioWorld(t, true)
	// Park the body on the platform with no motion
	w.state.Body.Position = mgl64.Vec3{250, -175, 1}
	w.state.Body.Velocity = mgl64.Vec2{}

	for i := 0; i < 5; i++ {
		w.Tick(Input{}, 0)
	}
	if w.Score() != 10 {
		t.Errorf("score = %d after repeated contact, expected 10", w.Score())
	}
}

func TestConsumeOnScoreRemovesPlatform(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	cfg.Platforms.ConsumeOnScore = true
	w := newTestWorld(t, cfg, 1)
	w.state.Colliders = Colliders{}
	w.state.Colliders.Insert(platformAt(0, -200, 10))
	w.state.Body.Position = mgl64.Vec3{0, -175, 1}
	w.state.Body.Velocity = mgl64.Vec2{}

	w.Tick(Input{}, 0)

	if w.Score() != 10 {
		t.Errorf("score = %d, expected 10", w.Score())
	}
	if n := len(w.Colliders()); n != 0 {
		t.Errorf("scored platform should be removed, %d left", n)
	}
}

func TestWorldDeterminism(t *testing.T) {
	cfg := config.DefaultHopperConfig()

	run := func() (*World, int) {
		w := newTestWorld(t, cfg, 12345)
		deaths := 0
		for i := 0; i < 60*30; i++ {
			in := Input{Jump: i%20 == 0}
			if rep := w.Tick(in, frame); rep.Died {
				deaths++
			}
		}
		return w, deaths
	}

	w1, d1 := run()
	w2, d2 := run()

	if d1 != d2 {
		t.Errorf("death counts differ: %d vs %d", d1, d2)
	}
	if w1.Body() != w2.Body() {
		t.Errorf("bodies differ: %+v vs %+v", w1.Body(), w2.Body())
	}
	if w1.Score() != w2.Score() {
		t.Errorf("scores differ: %d vs %d", w1.Score(), w2.Score())
	}
	c1, c2 := w1.Colliders(), w2.Colliders()
	if len(c1) != len(c2) {
		t.Fatalf("collider counts differ: %d vs %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("collider %d differs: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}

func TestLongFrameSpawnsOnce(t *testing.T) {
	w := newTestWorld(t, config.DefaultHopperConfig(), 5)

	rep := w.Tick(Input{}, 10.0)
	if !rep.Spawned {
		t.Fatal("a 10s frame should spawn one platform")
	}
	before := len(w.Colliders())

	for i := 0; i < 5; i++ {
		if rep := w.Tick(Input{}, frame); rep.Spawned {
			t.Errorf("tick %d after the long frame spawned again", i)
		}
	}
	if n := len(w.Colliders()); n > before {
		t.Errorf("collider count grew from %d to %d after the long frame", before, n)
	}
}
