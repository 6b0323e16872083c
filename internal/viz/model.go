package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/spinglobe/internal/render"
)

const (
	historyCapacity = 120
	speedFactor     = 1.5
	maxSpeedup      = 16
)

type TickMsg time.Time

type Options struct {
	Step     float64
	Interval time.Duration
	Theme    string
	Glyphs   string
}

// Model holds the viewer state. The rotation only advances on ticks while
// running.
type Model struct {
	renderer      *render.Renderer
	baseStep      float64
	step          float64
	interval      time.Duration
	rotation      float64
	frame         render.Frame
	frames        int
	running       bool
	showHelp      bool
	theme         Theme
	pal           palette
	glyphs        string
	coverage      []float64
	width, height int
}

func New(r *render.Renderer, opts Options) Model {
	theme := GetTheme(opts.Theme)
	m := Model{
		renderer: r,
		baseStep: opts.Step,
		step:     opts.Step,
		interval: opts.Interval,
		running:  true,
		theme:    theme,
		pal:      newPalette(theme),
		glyphs:   opts.Glyphs,
		coverage: make([]float64, 0, historyCapacity),
		width:    80,
		height:   24,
	}
	m.draw()
	return m
}

func (m Model) Rotation() float64          { return m.rotation }
func (m Model) Frames() int                { return m.frames }
func (m Model) Running() bool              { return m.running }
func (m Model) Step() float64              { return m.step }
func (m Model) Theme() Theme               { return m.theme }
func (m Model) CurrentFrame() render.Frame { return m.frame }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.rotation = 0
			m.draw()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.pal = newPalette(m.theme)
		case "+", "=":
			if m.step*speedFactor <= m.baseStep*maxSpeedup {
				m.step *= speedFactor
			}
		case "-", "_":
			if m.step/speedFactor >= m.baseStep/maxSpeedup {
				m.step /= speedFactor
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.running {
			m.rotation += m.step
			m.frames++
			m.draw()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) draw() {
	m.frame = m.renderer.Render(m.rotation)
	if len(m.coverage) == historyCapacity {
		m.coverage = m.coverage[1:]
	}
	m.coverage = append(m.coverage, m.frame.Coverage())
}

func (m Model) View() string {
	if m.showHelp {
		return helpBox.Render(strings.Join([]string{
			"KEYBOARD SHORTCUTS",
			"",
			"Space  Pause/Resume rotation",
			"R      Reset rotation",
			"T      Cycle themes",
			"+ / -  Faster / slower",
			"?      Toggle this help",
			"Q      Quit",
		}, "\n"))
	}

	globe := strings.TrimSuffix(m.frame.String(), "\n")
	canvasView := canvasStyle.Render(m.pal.globe.Render(globe))

	status := m.pal.running.Render("RUNNING")
	if !m.running {
		status = m.pal.paused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(m.pal.header.Render("SPINGLOBE") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(m.stat("Frame", fmt.Sprintf("%d", m.frames)))
	s.WriteString(m.stat("Rotation", fmt.Sprintf("%.1f°", math.Mod(m.rotation, 2*math.Pi)*180/math.Pi)))
	s.WriteString(m.stat("Step", fmt.Sprintf("%.2f°", m.step*180/math.Pi)))
	s.WriteString(m.stat("Glyphs", m.glyphs))
	s.WriteString(m.stat("Theme", m.theme.Name))
	s.WriteString(m.stat("Coverage", fmt.Sprintf("%.1f%%", m.frame.Coverage()*100)))
	s.WriteString("\n" + m.pal.SparklineChart(m.coverage, 28) + "\n")
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme +/-:Speed ?:Help"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

func (m Model) stat(label, value string) string {
	return labelStyle.Render(label) + m.pal.value.Render(value) + "\n"
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
