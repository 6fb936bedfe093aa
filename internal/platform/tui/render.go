package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/starfall/internal/core"
)

// palette maps core colours to ANSI terminal colours. The 256-colour
// entries cover the bomb tint and the HUD greys.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// look is what a run of cells shares.
type look struct {
	color core.Color
	bold  bool
}

// style returns the lipgloss style for a look. Unknown colours render in
// the terminal's default foreground.
func (l look) style() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(l.bold)
	if c, ok := palette[l.color]; ok {
		st = st.Foreground(c)
	}
	return st
}

// run is a horizontal stretch of cells with the same look.
type run struct {
	look
	text string
}

// rowRuns splits row y into runs of equal look.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	var text strings.Builder
	var cur look
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		l := look{color: cell.Color, bold: cell.Bold}
		if x > 0 && l != cur {
			runs = append(runs, run{look: cur, text: text.String()})
			text.Reset()
		}
		cur = l
		text.WriteRune(cell.Rune)
	}
	if text.Len() > 0 {
		runs = append(runs, run{look: cur, text: text.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of equal look gets a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[look]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			st, ok := styles[r.look]
			if !ok {
				st = r.style()
				styles[r.look] = st
			}
			sb.WriteString(st.Render(r.text))
		}
	}
	return sb.String()
}
