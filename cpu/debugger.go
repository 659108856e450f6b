package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// debuggerModel is the bubbletea model backing Debugger. Each step keypress
// (space or 'j') steps the Cpu by exactly one instruction and redraws the register/memory
// panel, the same single-step loop the rest of this package drives
// programmatically via Step.
type debuggerModel struct {
	cpu *Cpu

	offset uint16 // base address the page table view starts at (rounded down to 16 bytes)
	prevPC uint16
}

const bytesPerPage = 16

// Init satisfies tea.Model. The caller is expected to have already loaded a
// program and set the program counter before starting the debugger.
func (m debuggerModel) Init() tea.Cmd { return nil }

// Update satisfies tea.Model: space or 'j' advances one instruction, 'q'
// quits.
func (m debuggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.ProgramCounter
			m.cpu.Step()
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte memory page as one line, highlighting
// the byte at the current program counter.
func (m debuggerModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < bytesPerPage; i++ {
		addr := start + uint16(i)
		b := m.cpu.Read(addr)
		if addr == m.cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m debuggerModel) status() string {
	p := m.cpu.statusByte(false)
	var flags string
	for i := 7; i >= 0; i-- {
		if p&(1<<uint(i)) != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.cpu.ProgramCounter, m.prevPC,
		m.cpu.Accumulator, m.cpu.X, m.cpu.Y, m.cpu.Stack,
	) + flags
}

func (m debuggerModel) pageTable() string {
	header := "page | "
	for b := 0; b < bytesPerPage; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	aligned := m.offset - (m.offset % bytesPerPage)
	for i := 0; i < 5; i++ {
		pages = append(pages, m.renderPage(aligned+uint16(i*bytesPerPage)))
	}
	return strings.Join(pages, "\n")
}

// View satisfies tea.Model.
func (m debuggerModel) View() string {
	op := opcodeTable[m.cpu.Read(m.cpu.ProgramCounter)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(op),
	)
}

// Debugger launches an interactive terminal UI over cpu, stepping one
// instruction per keypress. offset, rounded down to a 16-byte boundary, is
// the first row of the memory page view; it does not itself change
// cpu.ProgramCounter (callers set that with SetPC first).
func Debugger(cpu *Cpu, offset uint16) error {
	_, err := tea.NewProgram(debuggerModel{cpu: cpu, offset: offset}).Run()
	return err
}
