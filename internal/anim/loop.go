package anim

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/spinglobe/internal/debuglog"
	"github.com/san-kum/spinglobe/internal/render"
)

const (
	// DefaultStep advances the sphere by two degrees per frame.
	DefaultStep     = math.Pi / 90
	DefaultInterval = time.Second / 60
)

// Observer is notified after every presented frame.
type Observer interface {
	OnFrame(n int, rotation float64, f render.Frame)
}

type Loop struct {
	renderer          *render.Renderer
	presenter         Presenter
	step              float64
	interval          time.Duration
	maxFrames         int
	ignoreWriteErrors bool
	observers         []Observer
	sleep             func(ctx context.Context, d time.Duration) error

	rotation float64
	frames   int
}

type Option func(*Loop)

func WithStep(step float64) Option { return func(l *Loop) { l.step = step } }

func WithInterval(d time.Duration) Option { return func(l *Loop) { l.interval = d } }

// WithMaxFrames stops the loop after n frames; 0 runs until cancelled.
func WithMaxFrames(n int) Option { return func(l *Loop) { l.maxFrames = n } }

// WithIgnoreWriteErrors keeps the loop running when a frame cannot be
// written. Failures are still logged.
func WithIgnoreWriteErrors(ignore bool) Option {
	return func(l *Loop) { l.ignoreWriteErrors = ignore }
}

func WithObserver(o Observer) Option {
	return func(l *Loop) { l.observers = append(l.observers, o) }
}

// WithSleep replaces the pause between frames.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Loop) { l.sleep = fn }
}

func New(r *render.Renderer, p Presenter, opts ...Option) *Loop {
	l := &Loop{
		renderer:  r,
		presenter: p,
		step:      DefaultStep,
		interval:  DefaultInterval,
		observers: make([]Observer, 0),
		sleep:     pause,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

// Rotation is the angle the next frame will be rendered at.
func (l *Loop) Rotation() float64 { return l.rotation }

// Frames is the number of frames presented so far.
func (l *Loop) Frames() int { return l.frames }

// Run renders and presents frames until ctx is cancelled or the frame limit
// is reached. Cancellation is a normal stop and returns nil; the frame on
// screen is left in place.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.validate(); err != nil {
		return err
	}

	debuglog.Printf("anim: starting loop %dx%d step=%.5f interval=%v",
		l.renderer.Width(), l.renderer.Height(), l.step, l.interval)

	for l.maxFrames == 0 || l.frames < l.maxFrames {
		if ctx.Err() != nil {
			break
		}

		f := l.renderer.Render(l.rotation)
		if err := l.presenter.Present(f); err != nil {
			if err := l.fail(err); err != nil {
				return err
			}
		}
		for _, obs := range l.observers {
			obs.OnFrame(l.frames, l.rotation, f)
		}

		l.rotation += l.step
		l.frames++
		if l.maxFrames > 0 && l.frames == l.maxFrames {
			break
		}

		if err := l.sleep(ctx, l.interval); err != nil {
			break
		}

		if err := l.presenter.Rewind(f); err != nil {
			if err := l.fail(err); err != nil {
				return err
			}
		}
	}

	debuglog.Printf("anim: stopped after %d frames at rotation %.4f", l.frames, l.rotation)
	return nil
}

func (l *Loop) validate() error {
	if !(l.step > 0) || math.IsInf(l.step, 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidStep, l.step)
	}
	if l.interval < 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidInterval, l.interval)
	}
	return nil
}

func (l *Loop) fail(err error) error {
	fe := &FrameError{
		Frame:    l.frames,
		Rotation: l.rotation,
		Wrapped:  fmt.Errorf("%w: %w", ErrPresent, err),
	}
	debuglog.Printf("%v", fe)
	if l.ignoreWriteErrors {
		return nil
	}
	return fe
}

func pause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
