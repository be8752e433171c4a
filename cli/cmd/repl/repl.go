// Package repl implements an interactive translation session on top of
// Bubble Tea. Address expressions evaluate against the loaded memory
// description; control commands are prefixed with ':' and fuzzy
// completed with Tab.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/membank/membank/cli/cmd"
	"github.com/membank/membank/lang"
	"github.com/membank/membank/log"
)

const prompt = "➜ "

// scrollback is the number of output lines retained on screen.
const scrollback = 64

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func helpMessage() string {
	return `
: Commands:

  :help          Print this cruft
  :banks         List bank layouts and translations
  :load FILE     Load a memory description
  :width N       Set address width (reparses on next :load)
  :set NAME=N    Bind a guard input
  :unset NAME    Remove a guard input binding
  :hex on|off    Toggle hexadecimal output
  :fmt           Print the loaded description in canonical form
  :clear         Clear screen
  :quit          Exit REPL

Usage:
  Type an address expression to translate it (e.g. 0x40 + 8)
  Press Tab to complete ':' commands
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// Repl is the kong command that starts an interactive session.
type Repl struct {
	File  string `help:"Memory description file to load on start" short:"f"`
	Width uint   `default:"${width}" help:"Address width in bits"  short:"w"`
}

// Run starts the interactive session.
func (r *Repl) Run(ctx context.Context) error {
	m := newModel(ctx, r.Width)

	if r.File != "" {
		component, err := cmd.ParseSource(ctx, r.File, r.Width)
		if err != nil {
			return err
		}

		m.component = component
		m.file = r.File
	}

	log.DebugContext(ctx, "repl starting",
		slog.String("file", r.File),
		slog.Uint64("width", uint64(r.Width)),
	)

	_, err := tea.NewProgram(m).Run()

	return err
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctx       context.Context
	input     textinput.Model
	component *lang.Component
	file      string
	width     uint
	inputs    lang.Inputs
	hex       bool
	lines     []string
	history   []string
	histIdx   int
	completer completer
}

func newModel(ctx context.Context, width uint) *model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.TextStyle = inputStyle
	ti.Focus()

	return &model{
		ctx:       ctx,
		input:     ti,
		width:     width,
		inputs:    lang.Inputs{},
		histIdx:   -1,
		completer: newCompleter(),
	}
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var tcmd tea.Cmd
		m.input, tcmd = m.input.Update(msg)

		return m, tcmd
	}

	switch key.Type {
	case tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			return m, tea.Quit
		}

		m.input.SetValue("")

		return m, nil

	case tea.KeyTab:
		if completed, ok := m.completer.complete(m.input.Value()); ok {
			m.input.SetValue(completed)
			m.input.CursorEnd()
		}

		return m, nil

	case tea.KeyUp:
		m.recall(-1)

		return m, nil

	case tea.KeyDown:
		m.recall(+1)

		return m, nil

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.histIdx = -1

		if line == "" {
			return m, nil
		}

		m.history = append(m.history, line)

		return m.submit(line)
	}

	var tcmd tea.Cmd
	m.input, tcmd = m.input.Update(msg)

	return m, tcmd
}

func (m *model) View() string {
	var b strings.Builder

	start := 0
	if len(m.lines) > scrollback {
		start = len(m.lines) - scrollback
	}

	for _, line := range m.lines[start:] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if hint := m.completer.hint(m.input.Value()); hint != "" {
		b.WriteString(hintStyle.Render(hint))
		b.WriteByte('\n')
	}

	return b.String()
}

// recall navigates the input history by delta.
func (m *model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}

	if m.histIdx == -1 {
		if delta > 0 {
			return
		}

		m.histIdx = len(m.history)
	}

	m.histIdx += delta

	switch {
	case m.histIdx < 0:
		m.histIdx = 0
	case m.histIdx >= len(m.history):
		m.histIdx = -1
		m.input.SetValue("")

		return
	}

	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

// submit dispatches one input line.
func (m *model) submit(line string) (tea.Model, tea.Cmd) {
	m.echo(line)

	if strings.HasPrefix(line, ":") {
		return m.control(line)
	}

	m.translate(line)

	return m, nil
}

func (m *model) echo(line string) {
	m.lines = append(m.lines,
		promptStyle.Render(prompt)+inputStyle.Render(line))
}

func (m *model) say(style lipgloss.Style, format string, args ...any) {
	for _, line := range strings.Split(fmt.Sprintf(format, args...), "\n") {
		m.lines = append(m.lines, style.Render(line))
	}
}

// translate evaluates an address expression and runs it through the
// loaded component.
func (m *model) translate(line string) {
	if m.component == nil {
		m.say(errorStyle, "no description loaded (:load FILE)")

		return
	}

	addr, err := cmd.EvalAddress(line)
	if err != nil {
		m.say(errorStyle, "%v", err)

		return
	}

	var out uint64
	if len(m.inputs) == 0 {
		out, err = m.component.Translate(addr)
	} else {
		out, err = m.component.TranslateWith(addr, m.inputs)
	}

	if err != nil {
		m.say(errorStyle, "%v", err)

		return
	}

	if m.hex {
		m.say(resultStyle, "#x%x", out)
	} else {
		m.say(resultStyle, "%d", out)
	}
}

// control handles ':' commands.
func (m *model) control(line string) (tea.Model, tea.Cmd) {
	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "exit":
		return m, tea.Quit

	case "help":
		m.say(hintStyle, "%s", helpMessage())

	case "clear":
		m.lines = nil

	case "banks":
		m.banks()

	case "load":
		m.load(arg)

	case "width":
		m.setWidth(arg)

	case "set":
		m.bind(arg)

	case "unset":
		delete(m.inputs, arg)

	case "hex":
		m.hex = arg != "off"

	case "fmt":
		m.format()

	default:
		m.say(errorStyle, "unknown command :%s (try :help)", name)
	}

	return m, nil
}

func (m *model) banks() {
	if m.component == nil {
		m.say(errorStyle, "no description loaded (:load FILE)")

		return
	}

	for i, bank := range m.component.Banks {
		m.say(resultStyle, "bank %d: layout %s translation %s",
			i,
			lang.FormatPartition(bank.Layout),
			lang.FormatTranslation(bank.Translation),
		)
	}
}

func (m *model) load(path string) {
	if path == "" {
		m.say(errorStyle, "usage: :load FILE")

		return
	}

	component, err := cmd.ParseSource(m.ctx, path, m.width)
	if err != nil {
		m.say(errorStyle, "%v", err)

		return
	}

	m.component = component
	m.file = path
	m.say(resultStyle, "loaded %s (%d banks, %d-bit addresses)",
		path, len(component.Banks), component.AddressWidth())
}

func (m *model) setWidth(arg string) {
	w, err := strconv.ParseUint(arg, 10, 8)
	if err != nil || w == 0 || w > 64 {
		m.say(errorStyle, "usage: :width N (1..64)")

		return
	}

	m.width = uint(w)

	if m.file != "" {
		m.load(m.file)
	}
}

func (m *model) bind(arg string) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		m.say(errorStyle, "usage: :set NAME=N")

		return
	}

	v, err := cmd.EvalAddress(strings.TrimSpace(value))
	if err != nil {
		m.say(errorStyle, "%v", err)

		return
	}

	m.inputs[strings.TrimSpace(name)] = v
}

func (m *model) format() {
	if m.component == nil {
		m.say(errorStyle, "no description loaded (:load FILE)")

		return
	}

	var b strings.Builder

	if err := m.component.Format(m.ctx, &b, 2); err != nil {
		m.say(errorStyle, "%v", err)

		return
	}

	m.say(resultStyle, "%s", strings.TrimRight(b.String(), "\n"))
}
