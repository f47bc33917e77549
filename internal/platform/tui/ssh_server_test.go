package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

func TestSessionGameToScoreboardAndBack(t *testing.T) {
	store := openStore(t)
	rt := core.DefaultConfig()
	rt.Seed = 3

	s, err := NewSessionModel(store, config.DefaultHopperConfig(), rt, "alice", nil)
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}

	next, _ := s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.onBoard {
		t.Fatal("quitting the game should show the scoreboard")
	}

	// A stale tick from the finished game is ignored
	next, cmd := s.Update(TickMsg(time.Now()))
	s = next.(SessionModel)
	if cmd != nil || !s.onBoard {
		t.Error("stale tick should not leave the scoreboard")
	}

	next, cmd = s.Update(runeKey('b'))
	s = next.(SessionModel)
	if s.onBoard || cmd == nil {
		t.Fatal("back should start a new game with a running tick loop")
	}
	if s.game.IsQuitting() {
		t.Error("new game should be live")
	}

	next, _ = s.Update(runeKey('q'))
	s = next.(SessionModel)
	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q on the scoreboard should end the session")
	}
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	cfg.Platforms.LeadDistance = 0
	if _, err := NewSessionModel(nil, cfg, core.DefaultConfig(), "alice", nil); err == nil {
		t.Error("expected an error for an invalid config")
	}
}
