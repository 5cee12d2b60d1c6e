package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-vjgrid/apc"
	"go-vjgrid/clock"
	"go-vjgrid/debug"
	"go-vjgrid/midi"
	"go-vjgrid/theme"
	"go-vjgrid/widgets"
)

// frame rate of the host update pass
const frameRate = 30

type Model struct {
	Controller *apc.Manager
	DeviceMgr  *midi.DeviceManager
	Clock      *clock.Clock
	Theme      *theme.Theme

	device     midi.Controller // current hardware (may be nil)
	session    string
	stopListen context.CancelFunc
	quitting   bool
}

type frameMsg time.Time

type DeviceEventMsg midi.DeviceEvent

func NewModel(ctrl *apc.Manager, deviceMgr *midi.DeviceManager, clk *clock.Clock, th *theme.Theme) Model {
	return Model{
		Controller: ctrl,
		DeviceMgr:  deviceMgr,
		Clock:      clk,
		Theme:      th,
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{nextFrame()}
	if m.DeviceMgr != nil {
		cmds = append(cmds, ListenForDevices(m.DeviceMgr))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.quitting = true
			if err := m.Controller.Close(); err != nil {
				debug.Error("tui", err)
			}
			m.disconnect()
			return m, tea.Quit

		case "+", "=":
			m.Clock.SetTempo(m.Clock.Tempo() + 5)

		case "-", "_":
			m.Clock.SetTempo(m.Clock.Tempo() - 5)

		case "0":
			m.Clock.Reset()

		case "1", "2", "3", "4", "5", "6", "7", "8":
			page := int(key[0] - '1')
			m.Controller.Enqueue(apc.PagePress(page))

		case "r":
			// random toggle for every enabled column on the current page
			for col := 0; col < apc.GridCols; col++ {
				m.Controller.Enqueue(apc.PadPress(apc.RandomRow, col))
			}
		}

	case frameMsg:
		m.Controller.Update(m.Clock.Beat())
		return m, nextFrame()

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		switch event.Type {
		case midi.DeviceConnected:
			m.disconnect()
			m.connect(event.Controller, event.Session)
		case midi.DeviceDisconnected:
			if m.device != nil && m.device.ID() == event.ID {
				m.disconnect()
			}
		}
		if m.DeviceMgr == nil {
			return m, nil
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

func (m *Model) connect(c midi.Controller, session string) {
	debug.Log("tui", "controller %s attached (session %s)", c.ID(), session)
	ctx, cancel := context.WithCancel(context.Background())
	m.device = c
	m.session = session
	m.stopListen = cancel
	m.Controller.SetSender(c)
	go m.Controller.Listen(ctx, c)
}

func (m *Model) disconnect() {
	if m.stopListen != nil {
		m.stopListen()
		m.stopListen = nil
	}
	if m.device != nil {
		debug.Log("tui", "controller %s detached", m.device.ID())
		m.Controller.SetSender(nil)
	}
	m.device = nil
	m.session = ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.Controller.Snapshot()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	deviceStatus := dimStyle.Render("no controller")
	if m.device != nil {
		deviceStatus = lipgloss.NewStyle().Foreground(m.Theme.Active()).Render(m.device.ID())
	}

	header := headerStyle.Render(fmt.Sprintf("go-vjgrid  page:%d  beat:%-6d %3dbpm  faders:%s",
		s.Page+1, s.Beat, m.Clock.Tempo(), s.Mode))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("  ")
	out.WriteString(deviceStatus)
	out.WriteString("\n\n")
	out.WriteString(m.renderGrid(s))
	out.WriteString("\n\n")
	out.WriteString(labelStyle.Render("params"))
	out.WriteString(" ")
	out.WriteString(renderParams(s))
	out.WriteString("\n\n")
	out.WriteString(m.renderFaders(s))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render(widgets.KeyHelp(keyHelp)))

	return out.String()
}

var keyHelp = []widgets.KeyBinding{
	{Key: "1-8", Desc: "page"},
	{Key: "r", Desc: "random row"},
	{Key: "+/-", Desc: "tempo"},
	{Key: "0", Desc: "reset beat"},
	{Key: "q", Desc: "quit"},
}

// renderGrid draws the pads and page buttons as the controller shows them
func (m Model) renderGrid(s apc.State) string {
	off := m.Theme.Muted()
	led := func(code uint8) widgets.Pad {
		if code == apc.ColorOff {
			return widgets.Pad{Color: off}
		}
		return widgets.Pad{Color: m.Theme.LED(code), Lit: true}
	}

	rows := make([][]widgets.Pad, apc.GridRows)
	for i := range rows {
		row := apc.GridRows - 1 - i
		rows[i] = make([]widgets.Pad, apc.GridCols)
		for col := range rows[i] {
			rows[i][col] = led(apc.PadColor(s.Cells[s.Page][col], row, s.Page))
		}
	}
	pages := make([]widgets.Pad, apc.NumPages)
	for p := range pages {
		pages[p] = widgets.Pad{Color: off}
		if p == s.Page {
			pages[p] = led(apc.PageColors[p])
		}
	}
	glyphs := widgets.Glyphs{On: m.Theme.Symbols.Pad, Off: m.Theme.Symbols.PadOff}
	return widgets.PadGrid(rows, pages, glyphs)
}

func renderParams(s apc.State) string {
	vals := s.ParamValues(s.Page)
	parts := make([]string, len(vals))
	for col, v := range vals {
		cell := s.Cells[s.Page][col]
		switch {
		case cell.Disabled():
			parts[col] = "-"
		case cell.IsRandom:
			parts[col] = fmt.Sprintf("%d*", v)
		default:
			parts[col] = fmt.Sprintf("%d", v)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderFaders(s apc.State) string {
	var lines []string
	for i, v := range s.Faders {
		mark := " "
		if s.Toggles[i] {
			mark = "●"
		}
		bar := widgets.FaderBar(v, 16, m.Theme.Symbols.FaderOn, m.Theme.Symbols.FaderOff)
		lines = append(lines, fmt.Sprintf("F%d %s %s %.2f", i+1, mark, bar, v))
	}
	return strings.Join(lines, "\n")
}
