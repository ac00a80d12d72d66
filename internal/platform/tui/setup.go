package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// SeatMode says who sits at the cannons.
type SeatMode int

const (
	SeatsHotSeat  SeatMode = iota // Every cannon is human
	SeatsVsCPU                    // One human, the rest autopilot
	SeatsSpectate                 // Every cannon is autopilot
	SeatsCustom                   // Pick the number of autopilots
)

// SetupSelection holds the user's choice from the setup screen.
type SetupSelection struct {
	Mode SeatMode
	Bots int
}

// SetupModel lets users choose how many cannons the autopilot drives.
type SetupModel struct {
	players      int
	cursor       int
	botCursor    int
	inBotsSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    SetupSelection
	choosing     bool
	quitting     bool
	back         bool
}

var seatModes = []string{
	"Hot seat (all human)",
	"Versus CPU",
	"Watch the CPU play",
	"Choose CPU seats...",
}

// NewSetupModel creates a setup screen for a round of the given size.
func NewSetupModel(players, width, height int) SetupModel {
	return SetupModel{
		players:   players,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inBotsSelect {
		return m.handleBotsSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m SetupModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(seatModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		mode := SeatMode(m.cursor)
		switch mode {
		case SeatsHotSeat:
			return m.choose(mode, 0)
		case SeatsVsCPU:
			return m.choose(mode, m.players-1)
		case SeatsSpectate:
			return m.choose(mode, m.players)
		case SeatsCustom:
			m.inBotsSelect = true
			m.botCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleBotsSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.botCursor > 0 {
			m.botCursor--
		}
	case MenuActionDown:
		if m.botCursor < m.players {
			m.botCursor++
		}
	case MenuActionSelect:
		return m.choose(SeatsCustom, m.botCursor)
	case MenuActionBack:
		m.inBotsSelect = false
	}

	return m, nil
}

func (m SetupModel) choose(mode SeatMode, bots int) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = SetupSelection{Mode: mode, Bots: bots}
	return m, tea.Quit
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inBotsSelect {
		b.WriteString(centerText("CPU SEATS", m.width))
		b.WriteString("\n\n")
		for n := 0; n <= m.players; n++ {
			cursor := "  "
			if n == m.botCursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%d CPU, %d human", cursor, n, m.players-n)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(fmt.Sprintf("%d CANNONS", m.players), m.width))
		b.WriteString("\n\n")
		for i, mode := range seatModes {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+mode, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the seat selection for a round of the given size.
func RunSetup(players int, cfg core.RuntimeConfig) (*SetupSelection, error) {
	p := tea.NewProgram(
		NewSetupModel(players, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
