// Package sim is the simulation core of the hopper game: a body falling
// under gravity, bouncing off streamed platforms, scoring on contact, and
// resetting when it falls too far.
//
// The package has no terminal or storage dependencies. A host loop calls
// World.Tick once per frame with the frame's input and elapsed seconds and
// reads the results back through the accessor methods.
package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

// State is everything a run owns. It is rebuilt as a whole on reset.
type State struct {
	Body      Body
	Score     Score
	Timer     SpawnTimer
	Colliders Colliders
}

// TickReport describes what happened during one tick.
type TickReport struct {
	Contact    ContactReport
	Boosted    bool // Jump impulse applied
	Died       bool // Body fell below the death line and the run was reset
	FinalScore int  // Score of the run that just ended, valid when Died
	EndedRun   int  // Number of the run that just ended, valid when Died
	Spawned    bool // A platform was streamed in
	Culled     int  // Platforms streamed out
}

// World owns the body, score, and colliders of one game session.
type World struct {
	cfg      config.HopperConfig
	streamer *Streamer
	state    State
	run      int
	ticks    int
}

// NewWorld validates cfg and builds a world with the body at its spawn
// point above a single starting platform.
func NewWorld(cfg config.HopperConfig, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := &World{
		cfg:      cfg,
		streamer: NewStreamer(cfg.Platforms, seed),
	}
	w.reset()
	return w, nil
}

// Tick advances the world by one step of dtRaw elapsed seconds.
// Order: integrate, resolve contacts, apply control, check death, stream platforms.
func (w *World) Tick(in Input, dtRaw float64) TickReport {
	w.mustBeLive()
	w.ticks++

	var rep TickReport
	s := &w.state
	phys := w.cfg.Physics

	Integrate(&s.Body, phys.Gravity, dtRaw, phys.MaxDt)
	rep.Contact = Resolve(&s.Body, &s.Colliders, &s.Score, w.cfg.Platforms.ConsumeOnScore)
	rep.Boosted = Boost(&s.Body, in, rep.Contact, phys.JumpImpulse)

	if Dead(s.Body, phys.DeathY) {
		rep.Died = true
		rep.FinalScore = int(s.Score)
		rep.EndedRun = w.run
		w.reset()
	}

	rep.Spawned, rep.Culled = w.streamer.Update(&s.Colliders, &s.Timer, s.Body.Position.X(), dtRaw)
	return rep
}

// Dead reports whether the body has fallen below the death line.
func Dead(b Body, deathY float64) bool {
	return b.Position.Y() < deathY
}

// reset replaces the whole run state in one assignment and starts a new run.
func (w *World) reset() {
	next := State{
		Body:  newBody(w.cfg),
		Timer: SpawnTimer{Period: w.cfg.Platforms.SpawnPeriod},
	}
	w.streamer.Seed(&next.Colliders, next.Body.Position.X())

	w.state = next
	w.run++
}

// mustBeLive panics when the world was not built by NewWorld.
func (w *World) mustBeLive() {
	if w == nil || w.streamer == nil {
		panic("sim: world not initialized, use NewWorld")
	}
}

// Body returns a copy of the body.
func (w *World) Body() Body {
	w.mustBeLive()
	return w.state.Body
}

// Score returns the current run's score.
func (w *World) Score() int {
	w.mustBeLive()
	return int(w.state.Score)
}

// Colliders returns a copy of the live colliders.
func (w *World) Colliders() []Collider {
	w.mustBeLive()
	return w.state.Colliders.Snapshot()
}

// Run returns the 1-based number of the current run.
func (w *World) Run() int {
	w.mustBeLive()
	return w.run
}

// Ticks returns the number of ticks since the world was created.
func (w *World) Ticks() int {
	w.mustBeLive()
	return w.ticks
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.HopperConfig {
	w.mustBeLive()
	return w.cfg
}
