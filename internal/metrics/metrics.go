// Package metrics summarizes an animation run. Each metric observes frames
// as they are presented and reduces them to a single value.
package metrics

import (
	"github.com/san-kum/spinglobe/internal/render"
)

type Metric interface {
	Name() string
	Observe(n int, rotation float64, f render.Frame)
	Value() float64
	Reset()
}

// Collector fans frames out to a set of metrics. It satisfies anim.Observer.
type Collector struct {
	metrics []Metric
}

func NewCollector(ms ...Metric) *Collector {
	return &Collector{metrics: ms}
}

func (c *Collector) Add(m Metric) { c.metrics = append(c.metrics, m) }

func (c *Collector) OnFrame(n int, rotation float64, f render.Frame) {
	for _, m := range c.metrics {
		m.Observe(n, rotation, f)
	}
}

func (c *Collector) Results() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (c *Collector) Reset() {
	for _, m := range c.metrics {
		m.Reset()
	}
}
