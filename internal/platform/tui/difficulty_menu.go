package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

var difficultyHints = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "slower bombs, quicker restart",
	config.DifficultyNormal: "the classic tuning",
	config.DifficultyHard:   "fast bombs, more points per star",
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector with the cursor on current.
func NewDifficultyModel(width, height int, current config.DifficultyPreset) DifficultyModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == current {
			cursor = i
		}
	}
	return DifficultyModel{
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("D I F F I C U L T Y", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, strings.ToUpper(string(p)[:1])+string(p)[1:], difficultyHints[p])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" while still choosing.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the selector. It returns "" when the user
// backs out or quits.
func RunDifficultySelector(cfg core.RuntimeConfig, current config.DifficultyPreset) (config.DifficultyPreset, error) {
	model := NewDifficultyModel(cfg.ScreenW, cfg.ScreenH, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}

	return m.Selected(), nil
}
