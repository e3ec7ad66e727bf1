// Package dialog collects generator input from the operator in the terminal.
//
// The form mirrors the board editor dialog: board type, HP, corner radius,
// mounting hole width (only shown for faceplates), the rear PCB mounting
// holes checkbox and Ok/Close buttons.
package dialog

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soypat/eurorack"
)

// Run shows the dialog seeded with seed and blocks until the operator
// accepts or cancels it. The boolean result is false when the dialog was cancelled, in which
// case nothing must be generated.
func Run(ctx context.Context, in io.Reader, out io.Writer, seed eurorack.Input) (eurorack.Input, bool, error) {
	p := tea.NewProgram(newModel(seed),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return eurorack.Input{}, false, err
	}
	m := final.(model)
	if !m.accepted {
		return eurorack.Input{}, false, nil
	}
	return m.Input(), true, nil
}

type field int

const (
	fieldType field = iota
	fieldHP
	fieldRad
	fieldMHW
	fieldPCBMH
	fieldOk
	fieldClose
	numFields
)

var kinds = [...]string{"Faceplate", "PCB"}

type model struct {
	theme Theme

	kind   int // index into kinds
	inputs [fieldMHW + 1]textinput.Model
	pcbMH  bool

	focus    field
	accepted bool
	done     bool
}

func newModel(seed eurorack.Input) model {
	m := model{theme: DefaultTheme(), pcbMH: seed.PCBMounts}
	if eurorack.ParseKind(seed.Type) == eurorack.PCB && seed.Type != "" {
		m.kind = 1
	}
	values := map[field]string{fieldHP: seed.HP, fieldRad: seed.Rad, fieldMHW: seed.MHW}
	placeholders := map[field]string{fieldHP: "12", fieldRad: "2", fieldMHW: "1"}
	for f := fieldHP; f <= fieldMHW; f++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[f]
		ti.CharLimit = 16
		ti.Width = 10
		ti.SetValue(values[f])
		m.inputs[f] = ti
	}
	return m
}

// Input returns the form values as typed.
func (m model) Input() eurorack.Input {
	return eurorack.Input{
		Type:      kinds[m.kind],
		HP:        m.inputs[fieldHP].Value(),
		Rad:       m.inputs[fieldRad].Value(),
		MHW:       m.inputs[fieldMHW].Value(),
		PCBMounts: m.pcbMH,
	}
}

func (m model) faceplate() bool { return m.kind == 0 }

// visible reports whether f is shown. The mounting hole width is hidden
// for PCBs but keeps its value.
func (m model) visible(f field) bool {
	return f != fieldMHW || m.faceplate()
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m.finish(false)
	case "tab", "down":
		return m.move(1)
	case "shift+tab", "up":
		return m.move(-1)
	case "enter":
		switch m.focus {
		case fieldOk:
			return m.finish(true)
		case fieldClose:
			return m.finish(false)
		}
		return m.move(1)
	case "left", "right", " ":
		switch m.focus {
		case fieldType:
			m.kind = 1 - m.kind
			return m, nil
		case fieldPCBMH:
			if key.String() == " " {
				m.pcbMH = !m.pcbMH
			}
			return m, nil
		}
	}
	if m.focus >= fieldHP && m.focus <= fieldMHW {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) finish(accepted bool) (tea.Model, tea.Cmd) {
	m.accepted = accepted
	m.done = true
	return m, tea.Quit
}

// move shifts focus by dir, skipping hidden fields and wrapping around.
func (m model) move(dir int) (tea.Model, tea.Cmd) {
	if m.focus >= fieldHP && m.focus <= fieldMHW {
		m.inputs[m.focus].Blur()
	}
	next := m.focus
	for {
		next = (next + field(dir) + numFields) % numFields
		if m.visible(next) {
			break
		}
	}
	m.focus = next
	if m.focus >= fieldHP && m.focus <= fieldMHW {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Eurorack Options") + "\n\n")

	b.WriteString(m.label(fieldType, "Select Design Type"))
	for i, k := range kinds {
		mark := "( )"
		if i == m.kind {
			mark = "(•)"
		}
		b.WriteString(" " + mark + " " + k)
	}
	b.WriteString("\n")

	labels := map[field]string{
		fieldHP:  "HP:",
		fieldRad: "Corner radius (mm):",
		fieldMHW: "MH Width (mm):",
	}
	for f := fieldHP; f <= fieldMHW; f++ {
		if !m.visible(f) {
			continue
		}
		b.WriteString(m.label(f, labels[f]) + " " + m.inputs[f].View() + "\n")
	}

	check := "[ ]"
	if m.pcbMH {
		check = "[x]"
	}
	b.WriteString(m.styled(fieldPCBMH, lipgloss.NewStyle(), check+" Include rear PCB mounting holes") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.button(fieldOk, "Ok"), " ", m.button(fieldClose, "Close")) + "\n")
	b.WriteString(m.theme.Help.Render("tab/shift+tab move • space toggle • enter confirm • esc close"))
	return m.theme.Card.Render(b.String()) + "\n"
}

func (m model) label(f field, s string) string { return m.styled(f, m.theme.Label, s) }

func (m model) button(f field, s string) string { return m.styled(f, m.theme.Button, s) }

// styled renders s with style, highlighted when f has focus.
func (m model) styled(f field, style lipgloss.Style, s string) string {
	if m.focus == f {
		style = style.Inherit(m.theme.Focused)
	}
	return style.Render(s)
}
