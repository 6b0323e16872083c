package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/spinglobe/internal/render"
	"github.com/san-kum/spinglobe/internal/texture"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	row := strings.Repeat("#", 32)
	m, err := texture.Parse(row + "\n" + row + "\n")
	if err != nil {
		t.Fatal(err)
	}
	r := render.New(texture.NewSampler(m, texture.SourceTexture))
	return New(r, Options{Step: math.Pi / 90, Interval: time.Second / 60, Theme: "ocean", Glyphs: "texture"})
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)
	if !m.Running() {
		t.Error("viewer should start running")
	}
	if m.Theme().Name != "ocean" {
		t.Errorf("expected ocean theme, got %s", m.Theme().Name)
	}
	if m.CurrentFrame().Lines() != 8 {
		t.Errorf("expected 8 rows, got %d", m.CurrentFrame().Lines())
	}
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}
}

func TestTickAdvancesRotation(t *testing.T) {
	m := newTestModel(t)
	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = update(m, TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if m.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", m.Frames())
	}
	if math.Abs(m.Rotation()-3*math.Pi/90) > 1e-12 {
		t.Errorf("unexpected rotation %v", m.Rotation())
	}
}

func TestPauseStopsRotation(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, key(" "))
	if m.Running() {
		t.Fatal("space should pause")
	}
	m, cmd := update(m, TickMsg(time.Now()))
	if m.Rotation() != 0 {
		t.Error("paused viewer should not rotate")
	}
	if cmd == nil {
		t.Error("paused viewer should keep ticking")
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		key   string
		check func(t *testing.T, before, after Model)
	}{
		{"t", func(t *testing.T, before, after Model) {
			if after.Theme().Name == before.Theme().Name {
				t.Error("t should change theme")
			}
		}},
		{"+", func(t *testing.T, before, after Model) {
			if after.Step() <= before.Step() {
				t.Error("+ should speed up")
			}
		}},
		{"-", func(t *testing.T, before, after Model) {
			if after.Step() >= before.Step() {
				t.Error("- should slow down")
			}
		}},
		{"r", func(t *testing.T, before, after Model) {
			if after.Rotation() != 0 {
				t.Error("r should reset rotation")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = update(m, TickMsg(time.Now()))
			after, _ := update(m, key(tt.key))
			tt.check(t, m, after)
		})
	}
}

func TestSpeedIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 50; i++ {
		m, _ = update(m, key("+"))
	}
	if m.Step() > math.Pi/90*maxSpeedup {
		t.Errorf("step %v exceeds bound", m.Step())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(m, key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"SPINGLOBE", "RUNNING", "Coverage", "#"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = update(m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("? should show help")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "default" {
		t.Error("unknown theme should fall back to default")
	}
	names := ThemeNames()
	if NextTheme(names[len(names)-1]).Name != names[0] {
		t.Error("theme cycle should wrap")
	}
}
