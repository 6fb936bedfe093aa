package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var defaultMenuItems = []MenuItem{
	{Label: "Play", Choice: MenuChoicePlay},
	{Label: "High Scores", Choice: MenuChoiceScoreboard},
	{Label: "Quit", Choice: MenuChoiceQuit},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	gameID    string
	best      int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. The best score is read once from
// the store when one is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID string) MenuModel {
	best := 0
	if store != nil {
		if high, err := store.HighScore(gameID, ""); err == nil {
			best = high
		}
	}

	return MenuModel{
		items:     defaultMenuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		gameID:    gameID,
		best:      best,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(letterSpaced(registry.Title(m.gameID)), m.width))
	b.WriteString("\n\n")

	subtitle := "Collect the stars, dodge the bombs"
	if m.best > 0 {
		subtitle = fmt.Sprintf("Best: %d", m.best)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Label, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or MenuChoiceNone while choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// letterSpaced turns a title into the spaced capitals of the menu header.
func letterSpaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, gameID string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, gameID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
