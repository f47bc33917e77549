package hopper

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// SimOptions controls a headless run.
type SimOptions struct {
	Ticks     int     // Number of ticks to run
	Dt        float64 // Seconds per tick
	JumpEvery int     // Press jump every N ticks, 0 never
	Seed      int64
}

// RunResult is one finished run of a headless simulation.
type RunResult struct {
	Run   int
	Score int
	Ticks int // Ticks the run lasted
}

// SimSummary is the outcome of a headless simulation.
type SimSummary struct {
	Finished []RunResult
	Current  core.GameState
	X, Y     float64 // Final body position
}

// Simulate drives a game without a terminal using a fixed timestep.
// A nil logger discards output.
func Simulate(cfg config.HopperConfig, opts SimOptions, logger *log.Logger) (SimSummary, error) {
	if opts.Ticks < 0 || opts.Dt < 0 || opts.JumpEvery < 0 {
		return SimSummary{}, fmt.Errorf("hopper: negative simulation option: %+v", opts)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := core.DefaultConfig()
	rt.Seed = opts.Seed
	g, err := New(cfg, rt)
	if err != nil {
		return SimSummary{}, err
	}

	var sum SimSummary
	runStart := 0
	in := core.NewInputFrame()
	for i := 0; i < opts.Ticks; i++ {
		in.Clear()
		if opts.JumpEvery > 0 && i%opts.JumpEvery == 0 {
			in.Set(core.ActionJump)
		}

		res := g.Step(in, opts.Dt)
		if res.Died {
			r := RunResult{Run: res.EndedRun, Score: res.FinalScore, Ticks: i + 1 - runStart}
			sum.Finished = append(sum.Finished, r)
			runStart = i + 1
			logger.Info("run ended", "run", r.Run, "score", r.Score, "ticks", r.Ticks)
		}
		logger.Debug("tick", "n", i, "score", res.State.Score,
			"x", g.World().Body().Position.X(), "y", g.World().Body().Position.Y())
	}

	b := g.World().Body()
	sum.Current = g.State()
	sum.X, sum.Y = b.Position.X(), b.Position.Y()
	return sum, nil
}
