package dialog

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soypat/eurorack"
)

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func TestFaceplateForm(t *testing.T) {
	m := press(t, newModel(eurorack.Input{}),
		keyTab, typed("12"),
		keyTab, typed("2"),
		keyTab, typed("1"),
		keyTab, keySpace,
		keyTab,
	)
	if m.focus != fieldOk {
		t.Fatalf("expected focus on Ok, got %d", m.focus)
	}
	next, cmd := m.Update(keyEnter)
	m = next.(model)
	if !m.accepted || !m.done || cmd == nil {
		t.Fatalf("enter on Ok must accept and quit")
	}
	want := eurorack.Input{Type: "Faceplate", HP: "12", Rad: "2", MHW: "1", PCBMounts: true}
	if got := m.Input(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPCBHidesSlotWidth(t *testing.T) {
	m := press(t, newModel(eurorack.Input{MHW: "3"}), keyRight)
	if m.faceplate() {
		t.Fatal("right arrow on type must select PCB")
	}
	if strings.Contains(m.View(), "MH Width") {
		t.Error("slot width must be hidden for PCB")
	}
	m = press(t, m, keyTab, keyTab, keyTab)
	if m.focus != fieldPCBMH {
		t.Errorf("expected focus to skip slot width, got %d", m.focus)
	}
	// Hidden value is still reported as typed.
	if got := m.Input(); got.Type != "PCB" || got.MHW != "3" {
		t.Errorf("unexpected input %+v", got)
	}
	m = press(t, m, keyShiftTab, keyShiftTab, keyShiftTab)
	if m.focus != fieldType {
		t.Errorf("expected focus back on type, got %d", m.focus)
	}
}

func TestFocusWraps(t *testing.T) {
	m := press(t, newModel(eurorack.Input{}), keyShiftTab)
	if m.focus != fieldClose {
		t.Errorf("shift+tab from first field got %d, want Close", m.focus)
	}
	m = press(t, m, keyTab)
	if m.focus != fieldType {
		t.Errorf("tab from last field got %d, want type", m.focus)
	}
}

func TestSeed(t *testing.T) {
	m := newModel(eurorack.Input{Type: "PCB", HP: "8", Rad: "1.5", PCBMounts: true})
	want := eurorack.Input{Type: "PCB", HP: "8", Rad: "1.5", PCBMounts: true}
	if got := m.Input(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// Unknown or empty types start on the first choice like the editor dialog.
	if m := newModel(eurorack.Input{}); !m.faceplate() {
		t.Error("empty seed must select Faceplate")
	}
}

func TestCancel(t *testing.T) {
	for _, test := range []struct {
		name string
		keys []tea.Msg
	}{
		{"esc", []tea.Msg{typed("x"), keyEsc}},
		{"ctrl+c", []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}}},
		{"close button", []tea.Msg{keyShiftTab, keyEnter}},
	} {
		m := press(t, newModel(eurorack.Input{}), test.keys...)
		if m.accepted || !m.done {
			t.Errorf("%s: expected cancelled dialog, accepted=%v done=%v", test.name, m.accepted, m.done)
		}
	}
}

func TestRun(t *testing.T) {
	in := strings.NewReader("\t12\t2\t1\t \t\r")
	got, ok, err := Run(context.Background(), in, io.Discard, eurorack.Input{})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected accepted dialog")
	}
	want := eurorack.Input{Type: "Faceplate", HP: "12", Rad: "2", MHW: "1", PCBMounts: true}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRunCancelled(t *testing.T) {
	_, ok, err := Run(context.Background(), strings.NewReader("\x03"), io.Discard, eurorack.Input{HP: "4"})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("ctrl+c must cancel")
	}
}
