package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quill-lang/native-bridge/dynlib"
	"github.com/quill-lang/native-bridge/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"i"},
	Short:   "Interactively resolve libraries and symbols",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

type browseState int

const (
	stateInputLib browseState = iota
	stateSymbols
)

type symEntry struct {
	name string
	addr uintptr
	err  error
}

type browseModel struct {
	reg *dynlib.Registry

	err      error
	library  string
	handle   dynlib.Handle
	slot     *dynlib.Slot
	entries  []symEntry
	libInput textinput.Model
	symInput textinput.Model
	state    browseState
}

func newBrowseModel() *browseModel {
	lib := textinput.New()
	lib.Prompt = "library: "
	lib.Placeholder = "m, libcrypto, @self, @default"
	lib.Width = 40
	lib.Focus()

	sym := textinput.New()
	sym.Prompt = "symbol: "
	sym.Placeholder = "cos"
	sym.Width = 40

	return &browseModel{
		reg:      dynlib.NewRegistry(dynlib.NewSystemLoader()),
		slot:     &dynlib.Slot{},
		libInput: lib,
		symInput: sym,
		state:    stateInputLib,
	}
}

type libResolvedMsg struct {
	name   string
	handle dynlib.Handle
}

type symResolvedMsg struct {
	name string
	addr uintptr
	err  error
}

func (m *browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browseModel) resolveLibrary(name string) tea.Cmd {
	return func() tea.Msg {
		return libResolvedMsg{name: name, handle: m.reg.Resolve(name)}
	}
}

func (m *browseModel) resolveSymbol(symbol string) tea.Cmd {
	return func() tea.Msg {
		addr, err := m.reg.LoadAndLookup(m.slot, m.library, symbol)
		return symResolvedMsg{name: symbol, addr: addr, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateInputLib:
				return m, m.resolveLibrary(m.libInput.Value())
			case stateSymbols:
				if symbol := m.symInput.Value(); symbol != "" {
					return m, m.resolveSymbol(symbol)
				}
			}

		case "esc":
			switch m.state {
			case stateInputLib:
				return m, tea.Quit
			case stateSymbols:
				m.state = stateInputLib
				m.entries = nil
				m.slot = &dynlib.Slot{}
				m.err = nil
				m.symInput.Blur()
				m.symInput.SetValue("")
				m.libInput.Focus()
			}
		}

	case libResolvedMsg:
		if msg.handle == 0 {
			m.err = errors.LibraryNotFound(msg.name)
			return m, nil
		}
		m.err = nil
		m.library = msg.name
		m.handle = msg.handle
		m.state = stateSymbols
		m.libInput.Blur()
		m.symInput.Focus()

	case symResolvedMsg:
		m.entries = append(m.entries, symEntry(msg))
		m.symInput.SetValue("")
	}

	var cmd tea.Cmd
	switch m.state {
	case stateInputLib:
		m.libInput, cmd = m.libInput.Update(msg)
	case stateSymbols:
		m.symInput, cmd = m.symInput.Update(msg)
	}
	return m, cmd
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Native Bridge Probe"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInputLib:
		b.WriteString("Resolve a library:\n\n")
		b.WriteString(m.libInput.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter resolve • esc quit"))

	case stateSymbols:
		name := m.library
		if name == "" {
			name = dynlib.DefaultLibrary
		}
		b.WriteString(resultStyle.Render(fmt.Sprintf("%s  handle %#x", name, uintptr(m.handle))))
		b.WriteString("\n\n")
		for _, e := range m.entries {
			if e.err != nil {
				b.WriteString("  " + symbolStyle.Render(e.name) + "  " + errorStyle.Render(e.err.Error()))
			} else {
				b.WriteString("  " + symbolStyle.Render(e.name) + "  " + addrStyle.Render(fmt.Sprintf("%#x", e.addr)))
			}
			b.WriteString("\n")
		}
		if len(m.entries) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.symInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter resolve symbol • esc change library • ctrl+c quit"))
	}

	return b.String()
}
