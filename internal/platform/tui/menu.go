package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/registry"
)

// pickerPresets are the difficulties offered by the picker, in cycle order.
// The empty preset keeps the loaded config untouched.
var pickerPresets = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// PickerModel is the Bubble Tea model for choosing a mode and difficulty
// before a run.
type PickerModel struct {
	modes     []registry.ModeInfo
	cursor    int
	preset    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  bool
}

// NewPickerModel creates a picker over every registered mode.
func NewPickerModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) PickerModel {
	m := PickerModel{
		modes:     registry.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range pickerPresets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for picker navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.cursor = max(m.cursor-1, 0)
	case core.ActionDown:
		m.cursor = min(m.cursor+1, max(len(m.modes)-1, 0))
	case core.ActionLeft:
		m.preset = (m.preset - 1 + len(pickerPresets)) % len(pickerPresets)
	case core.ActionRight:
		m.preset = (m.preset + 1) % len(pickerPresets)
	case core.ActionConfirm:
		if len(m.modes) > 0 {
			m.selected = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("H A R V E S T   R U S H", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, g := range m.modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+g.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", presetLabel(m.Preset())), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// Selected returns the chosen mode ID, or "" if nothing was chosen.
func (m PickerModel) Selected() string {
	if !m.selected || len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

// Preset returns the difficulty currently shown.
func (m PickerModel) Preset() config.DifficultyPreset {
	return pickerPresets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	GameID string
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// RunPicker runs the picker and returns the selection.
func RunPicker(cfg core.RuntimeConfig, preset config.DifficultyPreset) (PickerResult, error) {
	p := tea.NewProgram(
		NewPickerModel(cfg, preset),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Config: cfg, Quit: true}, nil
	}

	result := PickerResult{
		GameID: m.Selected(),
		Preset: m.Preset(),
		Config: m.Config(),
	}
	result.Quit = result.GameID == ""
	return result, nil
}
