package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vmlinuz719/stack85/vm"
)

// tickMsg drives auto-run mode: while running, the model steps one
// instruction per tick instead of blocking on a stdin read.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(60*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type debugModel struct {
	ctrl        *vm.Control
	running     bool
	halted      bool
	breakpoints map[uint16]struct{}
	pendingBrk  bool
	brkInput    string
	status      string
}

// newDebugModel wires the debugger's command set - n/next, r/run,
// b/break <addr> - onto bubbletea key bindings.
func newDebugModel(ctrl *vm.Control) debugModel {
	return debugModel{
		ctrl:        ctrl,
		breakpoints: make(map[uint16]struct{}),
		status:      "n: step    r: run/pause    b: set breakpoint    q: quit",
	}
}

func (m debugModel) Init() tea.Cmd {
	return tick()
}

func (m debugModel) step() debugModel {
	if !m.ctrl.IsRunning() {
		m.halted = true
		m.running = false
		return m
	}

	m.ctrl.ExecuteInstruction()

	if !m.ctrl.IsRunning() {
		m.halted = true
		m.running = false
		m.status = "halted"
		return m
	}

	if _, hit := m.breakpoints[m.ctrl.Registers().IP]; hit && m.running {
		m.running = false
		m.status = fmt.Sprintf("breakpoint at 0x%04X", m.ctrl.Registers().IP)
	}
	return m
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pendingBrk {
			return m.updateBreakpointInput(msg), nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m = m.step()
		case "r":
			m.running = !m.running
			if m.running {
				m.status = "running"
			} else {
				m.status = "paused"
			}
		case "b":
			m.pendingBrk = true
			m.brkInput = ""
		}
		return m, nil

	case tickMsg:
		if m.running && !m.halted {
			m = m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m debugModel) updateBreakpointInput(msg tea.KeyMsg) debugModel {
	switch msg.String() {
	case "enter":
		addr, err := strconv.ParseUint(strings.TrimSpace(m.brkInput), 0, 16)
		if err != nil {
			m.status = fmt.Sprintf("invalid breakpoint address: %q", m.brkInput)
		} else {
			m.breakpoints[uint16(addr)] = struct{}{}
			m.status = fmt.Sprintf("breakpoint set at 0x%04X", addr)
		}
		m.pendingBrk = false
	case "esc":
		m.pendingBrk = false
	case "backspace":
		if len(m.brkInput) > 0 {
			m.brkInput = m.brkInput[:len(m.brkInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.brkInput += msg.String()
		}
	}
	return m
}

var (
	paneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m debugModel) View() string {
	regs := m.ctrl.Registers()

	flagBits := []struct {
		name string
		set  bool
	}{
		{"C", regs.Flags&vm.FlagC != 0},
		{"V", regs.Flags&vm.FlagV != 0},
		{"Z", regs.Flags&vm.FlagZ != 0},
		{"N", regs.Flags&vm.FlagN != 0},
		{"O", regs.Flags&vm.FlagO != 0},
	}
	var flags strings.Builder
	for _, f := range flagBits {
		v := "0"
		if f.set {
			v = "1"
		}
		fmt.Fprintf(&flags, "%s=%s ", f.name, v)
	}

	regPane := paneStyle.Render(fmt.Sprintf(
		"%s\nIP=%04X SP=%04X\nLINK=%04X LOCAL=%04X\nS0=%02X S1=%02X S2=%02X S3=%02X\n%s\nrunning=%v",
		headStyle.Render("registers"),
		regs.IP, regs.SP, regs.Link, regs.Local,
		regs.S0, regs.S1, regs.S2, regs.S3,
		flags.String(), regs.Running,
	))

	memPane := paneStyle.Render(headStyle.Render("memory") + "\n" + vm.DebugPrint(m.ctrl.MemorySnapshot()))

	status := m.status
	if m.pendingBrk {
		status = "breakpoint address: " + m.brkInput
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, regPane, memPane),
		status,
	)
}
