package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(16, 1)
	s.DrawTextColor(0, 0, "Score", core.ColorWhite)
	s.DrawTextBold(6, 0, "Game", core.ColorRed)
	s.DrawTextColor(10, 0, "Over", core.ColorRed)

	want := []run{
		{look{core.ColorWhite, false}, "Score"},
		{look{core.ColorDefault, false}, " "},
		{look{core.ColorRed, true}, "Game"},
		{look{core.ColorRed, false}, "Over"},
		{look{core.ColorDefault, false}, "  "},
	}
	got := rowRuns(s, 0)
	if len(got) != len(want) {
		t.Fatalf("rowRuns() = %+v, expected %d runs", got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestRowRunsEmptyScreen(t *testing.T) {
	if runs := rowRuns(core.NewScreen(0, 1), 0); len(runs) != 0 {
		t.Errorf("zero-width row should have no runs, got %+v", runs)
	}
}

func TestLookStyle(t *testing.T) {
	if !(look{core.ColorRed, true}).style().GetBold() {
		t.Error("bold look should render bold")
	}
	if (look{core.ColorRed, false}).style().GetBold() {
		t.Error("plain look should not render bold")
	}
	if _, ok := palette[core.ColorDefault]; ok {
		t.Error("the default colour should keep the terminal foreground")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "Score: 10", core.ColorWhite)
	s.DrawTextBold(1, 1, "Game Over!", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"Score: 10", "Game Over!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}
