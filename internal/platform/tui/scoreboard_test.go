package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/storage"
)

func TestScoreboardTabsFilterByDifficulty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("starfall", "easy", 10, 0)
	store.SaveScore("starfall", "normal", 20, 1)
	store.SaveScore("starfall", "normal", 30, 2)
	store.SaveScore("starfall", "hard", 40, 3)

	m := NewScoreboardModel(store, "starfall", 60, 24)

	// All, Easy, Normal, Hard
	want := []int{4, 1, 2, 1}
	for i, n := range want {
		if len(m.scores) != n {
			t.Errorf("tab %s has %d scores, expected %d", m.tabs[m.tabCursor].Title, len(m.scores), n)
		}
		if i < len(want)-1 {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
			m = next.(ScoreboardModel)
		}
	}

	// wraps around backwards
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.tabCursor != 0 {
		t.Errorf("tab cursor = %d, expected wrap to 0", m.tabCursor)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.tabCursor != len(m.tabs)-1 {
		t.Errorf("tab cursor = %d, expected last tab", m.tabCursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "starfall", 100, 30)
	if len(m.scores) != 0 {
		t.Error("no store means no scores")
	}
	if m.View() == "" {
		t.Error("empty scoreboard should still render")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}
