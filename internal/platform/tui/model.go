package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/hopper"
	"github.com/vovakirdan/tui-hopper/internal/sim"
	"github.com/vovakirdan/tui-hopper/internal/storage"
)

// Model is the Bubble Tea model for running the hopper game.
type Model struct {
	game       *hopper.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	player     string
	config     core.RuntimeConfig
	clock      sim.Clock
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // Owned by a SessionModel; quitting hands control back instead of exiting
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables score saving, a nil logger discards log output.
func NewModel(game *hopper.Game, store *storage.Store, player string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = storage.LocalPlayer
	}

	cfg := game.Runtime()
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       help.New(),
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.loadBest()
	m.gameState = game.State()
	return m
}

// loadBest seeds the game's best score from storage.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.PlayerScores(m.player, 1)
	if err != nil {
		m.logger.Warn("could not load best score", "player", m.player, "error", err)
		return
	}
	if len(best) > 0 {
		m.game.SetBest(best[0].Score)
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
// Key presses arrive once per press, so every action in a frame is a new press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun(m.gameState.Run, m.gameState.Score)
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is resolution independent, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := m.clock.Delta(now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if result.Died {
		m.logger.Info("run ended",
			"player", m.player,
			"run", result.EndedRun,
			"score", result.FinalScore,
		)
		m.saveRun(result.EndedRun, result.FinalScore)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Zero-score runs are not kept.
func (m *Model) saveRun(run, score int) {
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Player: m.player,
		Run:    run,
		Score:  score,
		Seed:   m.config.Seed,
	})
	if err != nil {
		m.logger.Error("could not save score", "player", m.player, "run", run, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".hopper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", hopper.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// IsQuitting returns true once the player asked to leave the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *hopper.Game, store *storage.Store, logger *log.Logger) error {
	model := NewModel(game, store, storage.LocalPlayer, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
