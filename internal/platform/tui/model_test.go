package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/storage"
)

// fakeGame ends its round on a chosen step and records what it was fed.
type fakeGame struct {
	resets  int
	steps   int
	endOn   int
	inputs  []core.InputFrame
	state   core.GameState
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state.Round = 1
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	over := g.steps == g.endOn
	if over {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state, RoundOver: over}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store, clock *fakeClock) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, Options{
		Difficulty: "hard",
		Now:        clock.now,
	})
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{Loop: m.loop})
	return m
}

func TestModelSavesRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endOn: 3, state: core.GameState{Score: 70, Waves: 2}}
	m := newTestModel(t, g, store, &fakeClock{t: time.Unix(0, 0)})

	for range 6 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("fake", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved round, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 70 || got.Waves != 2 || got.Difficulty != "hard" {
		t.Errorf("saved %+v", got)
	}
	if !m.State().GameOver {
		t.Error("model should track the game state")
	}
}

func TestModelSkipsEmptyRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endOn: 1}
	m := newTestModel(t, g, store, &fakeClock{t: time.Unix(0, 0)})
	tick(t, m)

	if scores, _ := store.TopScores("fake", "", 10); len(scores) != 0 {
		t.Errorf("a zero score should not be saved, got %v", scores)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &fakeGame{endOn: 1, state: core.GameState{Score: 10}}
	m := newTestModel(t, g, nil, &fakeClock{t: time.Unix(0, 0)})
	tick(t, m)

	if g.steps != 1 {
		t.Errorf("steps = %d", g.steps)
	}
}

func TestModelHoldsMovementKeys(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	g := &fakeGame{}
	m := newTestModel(t, g, nil, clock)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, runeKey('p'))

	clock.t = clock.t.Add(100 * time.Millisecond)
	m = tick(t, m)
	clock.t = clock.t.Add(DefaultHoldWindow)
	m = tick(t, m)

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionPause) {
		t.Errorf("first tick input = %v", g.inputs[0].Actions)
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("left should be released once the hold window passes")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause should only fire on one tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, &fakeClock{})

	_, cmd := send(t, m, TickMsg{Loop: m.loop + 1})
	if g.steps != 0 || cmd != nil {
		t.Errorf("a tick from another loop should be dropped")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, &fakeClock{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize should not restart the game, resets = %d", g.resets)
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("game saw size %v", g.resized)
	}
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 30 {
		t.Errorf("config size = %dx%d", m.Config().ScreenW, m.Config().ScreenH)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{endOn: 2}
	m := newTestModel(t, g, nil, &fakeClock{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-round")
	}

	m = tick(t, m)
	m = tick(t, m)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("back should leave after game over")
	}
	if m.View() != "" {
		t.Error("a finished model renders nothing")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil, &fakeClock{})

	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil, &fakeClock{})

	view := m.View()
	if !strings.Contains(view, "fake game") {
		t.Errorf("view should contain the rendered game, got %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, expected 12", lines)
	}
}
