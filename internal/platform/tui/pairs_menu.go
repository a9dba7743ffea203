package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
)

// PairsMode represents the selected game mode.
type PairsMode int

const (
	PairsModeClassic PairsMode = iota
	PairsModeTimed
)

// PairsSelection holds the user's selection from the pairs menu.
type PairsSelection struct {
	Mode  PairsMode
	Level pairs.LevelID
}

// PairsMenuModel lets users choose the mode and difficulty level.
type PairsMenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	mode          PairsMode
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     PairsSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewPairsMenuModel creates a new pairs mode selection model.
func NewPairsMenuModel(width, height int) PairsMenuModel {
	return PairsMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PairsMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PairsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m PairsMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m PairsMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Classic, Timed
			m.cursor++
		}
	case MenuActionSelect:
		m.mode = PairsMode(m.cursor)
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PairsMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < pairs.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		level := pairs.LevelByIndex(m.levelCursor)
		if level == nil {
			return m, nil
		}
		m.choosing = false
		m.selection = PairsSelection{
			Mode:  m.mode,
			Level: level.ID,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode/level selection.
func (m PairsMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m PairsMenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P A I R S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic (no clock, mismatches cost points)",
		"Timed (beat the level clock)",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m PairsMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i := 0; i < pairs.LevelCount(); i++ {
		level := pairs.LevelByIndex(i)

		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s (%dx%d", cursor, level.Name, level.GridSize, level.GridSize)
		if m.mode == PairsModeTimed {
			line += fmt.Sprintf(", %ds", level.TimeLimit)
		}
		line += ")"
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PairsMenuModel) Selected() *PairsSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PairsMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PairsMenuModel) WantsBack() bool {
	return m.back
}

// RunPairsSelector runs the pairs mode/level selection and returns the
// selection, or nil if the user backed out.
func RunPairsSelector(cfg core.RuntimeConfig) (*PairsSelection, core.RuntimeConfig, error) {
	model := NewPairsMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PairsMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
