package anim

import (
	"fmt"
	"io"

	"github.com/san-kum/spinglobe/internal/render"
)

const cursorUp = "\r\033[%dA"

// Presenter puts frames on an output device.
type Presenter interface {
	// Present writes the whole frame.
	Present(f render.Frame) error
	// Rewind returns to the first row of f so the next frame replaces it.
	Rewind(f render.Frame) error
}

// ANSIPresenter writes frames as raw text and rewinds with a cursor-up
// escape sequence.
type ANSIPresenter struct {
	w io.Writer
}

func NewANSIPresenter(w io.Writer) *ANSIPresenter {
	return &ANSIPresenter{w: w}
}

func (p *ANSIPresenter) Present(f render.Frame) error {
	if _, err := p.w.Write(f.Bytes()); err != nil {
		return err
	}
	if fl, ok := p.w.(interface{ Flush() error }); ok {
		return fl.Flush()
	}
	return nil
}

func (p *ANSIPresenter) Rewind(f render.Frame) error {
	// CSI 0 A moves one row on most terminals.
	if f.Lines() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(p.w, cursorUp, f.Lines())
	return err
}
