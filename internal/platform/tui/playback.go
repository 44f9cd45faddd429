package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beltsim/internal/body"
	"github.com/vovakirdan/beltsim/internal/core"
	"github.com/vovakirdan/beltsim/internal/sim"
)

// PlaybackKeyMap defines the key bindings for replay control.
type PlaybackKeyMap struct {
	Pause   key.Binding
	Restart key.Binding
	StepFwd key.Binding
	StepBck key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k PlaybackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.StepFwd, k.StepBck, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlaybackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart},
		{k.StepFwd, k.StepBck, k.Quit},
	}
}

// DefaultPlaybackKeyMap returns default key bindings.
func DefaultPlaybackKeyMap() PlaybackKeyMap {
	return PlaybackKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		StepFwd: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "step forward"),
		),
		StepBck: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "step back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PlaybackModel replays a computed simulation in the terminal. The event
// log is computed once before the model starts; playback only re-evaluates
// positions per frame and looks collisions up by the frame's sampled time.
type PlaybackModel struct {
	bodies body.Set
	times  []float64
	byTime map[float64][]sim.Event

	frame   int
	playing bool

	screen *core.Screen
	vp     Viewport
	stars  []star

	config   core.RuntimeConfig
	keys     PlaybackKeyMap
	help     help.Model
	quitting bool
}

// NewPlaybackModel creates a playback model for the given bodies and their
// precomputed event log.
func NewPlaybackModel(bodies body.Set, events []sim.Event, duration, step float64, cfg core.RuntimeConfig) PlaybackModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	times := sim.SampleTimes(duration, step)
	// Reserve the bottom row for the status line
	drawH := core.Max(cfg.ScreenH-1, 1)

	return PlaybackModel{
		bodies:  bodies,
		times:   times,
		byTime:  sim.EventsByTime(events),
		playing: true,
		screen:  core.NewScreen(cfg.ScreenW, drawH),
		vp:      NewViewport(bodies, times, cfg.ScreenW, drawH),
		stars:   generateStars(cfg.Stars, cfg.ScreenW, drawH, cfg.Seed),
		config:  cfg,
		keys:    DefaultPlaybackKeyMap(),
		help:    help.New(),
	}
}

// Init starts the frame loop.
func (m PlaybackModel) Init() tea.Cmd {
	return frameCmd(m.config.FPS)
}

// Update handles messages and advances playback.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		drawH := core.Max(msg.Height-1, 1)
		m.screen.Resize(msg.Width, drawH)
		m.vp = NewViewport(m.bodies, m.times, msg.Width, drawH)
		m.stars = generateStars(m.config.Stars, msg.Width, drawH, m.config.Seed)
		return m, nil

	case FrameMsg:
		if m.playing && len(m.times) > 0 {
			m.frame = (m.frame + 1) % len(m.times)
		}
		return m, frameCmd(m.config.FPS)
	}

	return m, nil
}

// handleKey processes playback control keys.
func (m PlaybackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.playing = !m.playing

	case key.Matches(msg, m.keys.Restart):
		m.frame = 0
		m.playing = true

	case key.Matches(msg, m.keys.StepFwd):
		if !m.playing && len(m.times) > 0 {
			m.frame = (m.frame + 1) % len(m.times)
		}

	case key.Matches(msg, m.keys.StepBck):
		if !m.playing && len(m.times) > 0 {
			m.frame = (m.frame - 1 + len(m.times)) % len(m.times)
		}
	}

	return m, nil
}

// View renders the current frame plus a status line.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.times) == 0 {
		return "nothing to replay"
	}

	t := m.times[m.frame]
	drawFrame(m.screen, m.vp, m.bodies, t, m.byTime[t], m.stars)

	status := fmt.Sprintf("frame %d/%d", m.frame+1, len(m.times))
	if !m.playing {
		status += "  [paused]"
	}

	return RenderScreen(m.screen) + "\n" + status + "  " + m.help.View(m.keys)
}

// RunPlayback starts a terminal replay of the given simulation.
func RunPlayback(bodies body.Set, events []sim.Event, duration, step float64, cfg core.RuntimeConfig) error {
	model := NewPlaybackModel(bodies, events, duration, step, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
