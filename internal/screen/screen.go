// Package screen presents frames on a full-screen tcell terminal.
package screen

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/spinglobe/internal/debuglog"
	"github.com/san-kum/spinglobe/internal/render"
)

// Presenter draws each frame at the top-left of a tcell screen. Rewinding is
// implicit: the next frame is drawn over the same cells.
type Presenter struct {
	screen tcell.Screen
	style  tcell.Style
}

// New initializes the terminal. Call Close to restore it.
func New() (*Presenter, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s)
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(s tcell.Screen) (*Presenter, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	style := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	s.SetStyle(style)
	s.HideCursor()
	s.Clear()
	return &Presenter{screen: s, style: style}, nil
}

// SetForeground colors the sphere glyphs.
func (p *Presenter) SetForeground(c tcell.Color) {
	p.style = p.style.Foreground(c)
}

func (p *Presenter) Present(f render.Frame) error {
	width, height := p.screen.Size()
	for y, row := range f.Rows {
		if y >= height {
			break
		}
		x := 0
		for _, r := range row {
			if x >= width {
				break
			}
			p.screen.SetContent(x, y, r, nil, p.style)
			x++
		}
	}
	p.screen.Show()
	return nil
}

func (p *Presenter) Rewind(f render.Frame) error {
	return nil
}

// Watch polls for quit keys and calls cancel when one arrives. It returns
// when the screen is closed.
func (p *Presenter) Watch(cancel context.CancelFunc) {
	go func() {
		for {
			ev := p.screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				if isQuit(ev) {
					debuglog.Printf("screen: quit key %s", ev.Name())
					cancel()
					return
				}
			case *tcell.EventResize:
				p.screen.Clear()
				p.screen.Sync()
			}
		}
	}()
}

func (p *Presenter) Close() {
	p.screen.Fini()
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q', 'x', 'X':
			return true
		}
	}
	return false
}
