package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/spinglobe/internal/render"
)

const castVersion = 2

// CastHeader is the first line of an asciicast v2 file.
type CastHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp"`
	Env       map[string]string `json:"env,omitempty"`
}

// CastRecorder writes frames as asciicast v2 output events. Event times
// follow the frame interval rather than the wall clock, so a recording made
// without pausing still plays back at the intended rate.
type CastRecorder struct {
	w        io.Writer
	interval time.Duration
	frames   int
}

// NewCastRecorder writes the header for frames of the given size. The
// declared terminal is one row taller than a frame so the line break after
// the last row does not scroll the first row away.
func NewCastRecorder(w io.Writer, width, rows int, interval time.Duration) (*CastRecorder, error) {
	header := CastHeader{
		Version:   castVersion,
		Width:     width,
		Height:    rows + 1,
		Timestamp: time.Now().Unix(),
		Env: map[string]string{
			"TERM": "xterm-256color",
		},
	}
	data, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return nil, err
	}
	return &CastRecorder{w: w, interval: interval}, nil
}

func (c *CastRecorder) Present(f render.Frame) error {
	// Players emulate a terminal without output post-processing, so a bare
	// line feed would not return to the first column.
	if err := c.event(strings.ReplaceAll(f.String(), "\n", "\r\n")); err != nil {
		return err
	}
	c.frames++
	return nil
}

func (c *CastRecorder) Rewind(f render.Frame) error {
	if f.Lines() == 0 {
		return nil
	}
	return c.event(fmt.Sprintf("\r\033[%dA", f.Lines()))
}

// Frames is the number of frames written so far.
func (c *CastRecorder) Frames() int { return c.frames }

func (c *CastRecorder) elapsed() float64 {
	return (time.Duration(c.frames) * c.interval).Seconds()
}

func (c *CastRecorder) event(text string) error {
	data, err := json.Marshal([]interface{}{c.elapsed(), "o", text})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.w, "%s\n", data)
	return err
}
