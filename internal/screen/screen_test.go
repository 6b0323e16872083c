package screen

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/spinglobe/internal/render"
)

func newSimPresenter(t *testing.T) (*Presenter, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	p, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	sim.SetSize(20, 5)
	t.Cleanup(p.Close)
	return p, sim
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := sim.GetContents()
	c := cells[y*width+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestPresentDrawsRows(t *testing.T) {
	p, sim := newSimPresenter(t)

	f := render.Frame{Rows: []string{"ab", " c", "⣿d"}}
	if err := p.Present(f); err != nil {
		t.Fatalf("present failed: %v", err)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{1, 1, 'c'},
		{0, 2, '⣿'},
		{1, 2, 'd'},
	}
	for _, tt := range tests {
		if got := cellAt(sim, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPresentClipsToScreen(t *testing.T) {
	p, sim := newSimPresenter(t)
	sim.SetSize(3, 2)

	f := render.Frame{Rows: []string{"abcdef", "ghijkl", "mnopqr"}}
	if err := p.Present(f); err != nil {
		t.Fatalf("present failed: %v", err)
	}
	if got := cellAt(sim, 2, 1); got != 'i' {
		t.Errorf("expected 'i' at (2,1), got %q", got)
	}
}

func TestRewindIsNoop(t *testing.T) {
	p, _ := newSimPresenter(t)
	if err := p.Rewind(render.Frame{Rows: []string{"x"}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWatchCancelsOnQuitKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl+c", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, sim := newSimPresenter(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			p.Watch(cancel)
			sim.InjectKey(tt.key, tt.r, tcell.ModNone)

			select {
			case <-ctx.Done():
			case <-time.After(2 * time.Second):
				t.Fatal("quit key did not cancel context")
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want bool
	}{
		{tcell.KeyRune, 'q', true},
		{tcell.KeyRune, 'X', true},
		{tcell.KeyRune, 'a', false},
		{tcell.KeyEnter, 0, false},
		{tcell.KeyEscape, 0, true},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
		if got := isQuit(ev); got != tt.want {
			t.Errorf("isQuit(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}
