package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Game:    config.DefaultStarfallConfig(),
	})
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionStartsGameWithPreset(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Play
	if m.screen != screenDifficulty {
		t.Fatalf("screen = %v, expected difficulty picker", m.screen)
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyDown}) // normal -> hard
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("screen = %v, expected game with a tick command", m.screen)
	}
	if m.difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %q", m.difficulty)
	}

	g, ok := m.gameModel.game.(*starfall.Game)
	if !ok {
		t.Fatalf("game is %T", m.gameModel.game)
	}
	if g.Config().Bombs.SpeedMax != 700 || g.Config().Stars.Points != 15 {
		t.Errorf("hard preset not applied: %+v", g.Config().Bombs)
	}
	if m.base.Bombs.SpeedMax != config.DefaultStarfallConfig().Bombs.SpeedMax {
		t.Error("the base config must not change")
	}
}

func TestSessionSwallowsSubScreenQuit(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("back from the picker should show the menu, screen = %v", m.screen)
	}
	if m.quitting {
		t.Error("backing out must not end the session")
	}
	if cmd != nil {
		t.Error("the picker's quit command should be dropped")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore(starfall.ID, "easy", 120, 1)

	m := newTestSession(t, store)
	if !strings.Contains(m.View(), "Best: 120") {
		t.Errorf("menu should show the best score")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if !strings.Contains(m.View(), "120") {
		t.Error("scoreboard should list the saved round")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)

	m, cmd := sessionSend(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("a closed session renders nothing")
	}
}
