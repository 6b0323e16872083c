package metrics

import (
	"time"

	"github.com/san-kum/spinglobe/internal/render"
)

// FrameTime measures wall time between presented frames, in milliseconds.
type FrameTime struct {
	name    string
	now     func() time.Time
	last    time.Time
	samples []float64
	total   float64
}

func NewFrameTime() *FrameTime {
	return &FrameTime{name: "frame_ms", now: time.Now}
}

func (ft *FrameTime) Name() string { return ft.name }

func (ft *FrameTime) Observe(n int, rotation float64, f render.Frame) {
	t := ft.now()
	if !ft.last.IsZero() {
		ms := float64(t.Sub(ft.last)) / float64(time.Millisecond)
		ft.samples = append(ft.samples, ms)
		ft.total += ms
	}
	ft.last = t
}

func (ft *FrameTime) Value() float64 {
	if len(ft.samples) == 0 {
		return 0
	}
	return ft.total / float64(len(ft.samples))
}

func (ft *FrameTime) Series() []float64 { return ft.samples }

func (ft *FrameTime) Reset() {
	ft.last = time.Time{}
	ft.samples = nil
	ft.total = 0
}
