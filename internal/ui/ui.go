// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/audio"
	"github.com/litescript/orbix/internal/logging"
	"github.com/litescript/orbix/internal/prefs"
	"github.com/litescript/orbix/internal/scene"
	"github.com/litescript/orbix/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewScene ViewMode = iota
	ViewPlayground
	ViewInfo
	ViewCompare
)

const viewCount = 4

// frameInterval paces scene updates, about 30 fps.
const frameInterval = 33 * time.Millisecond

// maxFrameStep caps a single frame's wall-clock step after a stall.
const maxFrameStep = 250 * time.Millisecond

// Msg types for Bubble Tea
type (
	// FrameTickMsg advances the scene.
	FrameTickMsg time.Time

	// AnimTickMsg drives the footer spinner.
	AnimTickMsg time.Time
)

// Options carries the optional collaborators of the root model.
type Options struct {
	Player *audio.Player
	Prefs  *prefs.Store
	Logger *logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	composer *scene.Composer
	player   *audio.Player
	prefs    *prefs.Store
	log      *logging.Logger

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int
	lastFrame time.Time
	frame     scene.Frame

	// Sub-models
	sceneView  SceneViewModel
	playground PlaygroundModel
	info       InfoModel
	compare    CompareModel

	// Overlays, topmost first
	welcome  WelcomeModel
	tutorial TutorialModel
	nav      NavModel
}

// New creates the root UI model. It panics without a composer.
func New(composer *scene.Composer, opts Options) Model {
	if composer == nil {
		panic("ui: New requires a composer")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	visited := true
	if opts.Prefs != nil {
		visited = opts.Prefs.Visited()
	}

	if opts.Player != nil {
		index := make(map[string]int)
		for i, b := range scene.Bodies() {
			index[b.Name] = i
		}
		player := opts.Player
		composer.Subscribe(func(name string) { player.Chime(index[name]) })
	}

	return Model{
		composer:   composer,
		player:     opts.Player,
		prefs:      opts.Prefs,
		log:        log,
		viewMode:   ViewScene,
		sceneView:  NewSceneViewModel(composer),
		playground: NewPlaygroundModel(composer),
		info:       NewInfoModel(composer),
		compare:    NewCompareModel(),
		welcome:    NewWelcomeModel(visited),
		tutorial:   NewTutorialModel(),
		nav:        NewNavModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameTickCmd(),
		animTickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		if m.overlayOpen() || m.viewMode != ViewScene {
			break
		}
		msg.Y -= m.headerHeight()
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := m.contentHeight()
		m.sceneView = m.sceneView.SetSize(msg.Width, contentHeight)
		m.playground = m.playground.SetSize(msg.Width, contentHeight)
		m.info = m.info.SetSize(msg.Width, contentHeight)
		m.compare = m.compare.SetSize(msg.Width, contentHeight)

	case FrameTickMsg:
		cmds = append(cmds, frameTickCmd())
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
		m.lastFrame = now
		m.frame = m.composer.Step(dt)
		m.sceneView = m.sceneView.UpdateFrame(m.frame)
		m.info = m.info.UpdateFrame(m.frame)

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case BodyClickedMsg:
		m.composer.OnBodyClicked(msg.Name)
		m.statusMsg = fmt.Sprintf("Selected %s (press 3 for details)", msg.Name)

	case NavigateMsg:
		if sel := m.composer.Navigate(msg.Target); sel != "" {
			m.statusMsg = "Flying to " + sel
		} else {
			m.statusMsg = "Flying to " + m.composer.Framing().Target()
		}

	case WelcomeDismissedMsg:
		if m.prefs != nil {
			if err := m.prefs.MarkVisited(); err != nil {
				m.log.Warn("save prefs: %v", err)
				m.statusMsg = "Could not save preferences: " + err.Error()
			}
		}
		if msg.StartTutorial {
			m.tutorial = m.tutorial.Start()
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes a key to the topmost overlay, the global bindings, or the active view.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.welcome.Open():
		m.welcome, cmd = m.welcome.Update(msg)
		return cmd
	case m.tutorial.Open():
		m.tutorial, cmd = m.tutorial.Update(msg)
		return cmd
	case m.nav.Open():
		m.nav, cmd = m.nav.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit

	case "1":
		m.viewMode = ViewScene
	case "2":
		m.viewMode = ViewPlayground
	case "3":
		m.viewMode = ViewInfo
	case "4":
		m.viewMode = ViewCompare
	case "tab":
		m.viewMode = (m.viewMode + 1) % viewCount

	case "g":
		m.nav = m.nav.Toggle()
	case "?":
		m.tutorial = m.tutorial.Start()

	case "p":
		if m.composer.TogglePause() {
			m.statusMsg = "Paused"
		} else {
			m.statusMsg = fmt.Sprintf("Resumed at ×%.1f", m.composer.Store().Get("timeScale"))
		}
	case "o":
		if m.composer.ToggleOrbits() {
			m.statusMsg = "Orbit lines on"
		} else {
			m.statusMsg = "Orbit lines off"
		}
	case "a":
		m.composer.RevealAll()
	case "m":
		if m.player == nil {
			m.statusMsg = "Audio unavailable"
			break
		}
		if m.player.ToggleMute() {
			m.statusMsg = "Sound off"
		} else {
			m.statusMsg = "Sound on"
		}

	default:
		return m.updateActiveView(msg)
	}
	return nil
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewScene:
		m.sceneView, cmd = m.sceneView.Update(msg)
	case ViewPlayground:
		m.playground, cmd = m.playground.Update(msg)
	case ViewInfo:
		m.info, cmd = m.info.Update(msg)
	case ViewCompare:
		m.compare, cmd = m.compare.Update(msg)
	}
	return cmd
}

func (m Model) overlayOpen() bool {
	return m.welcome.Open() || m.tutorial.Open() || m.nav.Open()
}

// headerHeight is the number of lines above the active view.
func (m Model) headerHeight() int {
	return lipgloss.Height(m.renderHeader()) + 1
}

func (m Model) contentHeight() int {
	h := m.height - m.headerHeight() - 3
	if h < 5 {
		h = 5
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch {
	case m.welcome.Open():
		content = m.center(m.welcome.View())
	case m.tutorial.Open():
		content = m.center(m.tutorial.View())
	case m.nav.Open():
		content = m.center(m.nav.View())
	default:
		switch m.viewMode {
		case ViewScene:
			content = m.sceneView.View()
		case ViewPlayground:
			content = m.playground.View()
		case ViewInfo:
			content = m.info.View()
		case ViewCompare:
			content = m.compare.View()
		}
	}

	return m.renderFrame(content)
}

func (m Model) center(s string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, s)
}

func (m Model) renderFrame(content string) string {
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`   ___  ____  ____ ___ __  __`,
		`  / _ \|  _ \| __ )_ _|\ \/ /`,
		` | | | | |_) |  _ \| |  \  / `,
		` | |_| |  _ <| |_) | |  /  \ `,
		`  \___/|_| \_\____/___|/_/\_\`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Solar System Explorer · v%s", version.Version)))
	b.WriteString("\n")

	return b.String()
}

// gradient stops for the logo: sun gold -> orange -> violet -> deep blue
var gradientStops = []colorful.Color{
	{R: 0.99, G: 0.72, B: 0.07},
	{R: 0.91, G: 0.45, B: 0.21},
	{R: 0.55, G: 0.36, B: 0.96},
	{R: 0.23, G: 0.51, B: 0.96},
}

// gradientColor returns a hex colour for a position in the logo gradient,
// blending horizontally through gradientStops and fading toward the bottom.
func gradientColor(col, row, width, height int) string {
	x := 0.0
	if width > 1 {
		x = float64(col) / float64(width-1)
	}
	seg := x * float64(len(gradientStops)-1)
	i := int(seg)
	if i >= len(gradientStops)-1 {
		i = len(gradientStops) - 2
	}
	c := gradientStops[i].BlendLuv(gradientStops[i+1], seg-float64(i))

	fade := 1.0 - float64(row)/float64(height)*0.4
	return colorful.Color{R: c.R * fade, G: c.G * fade, B: c.B * fade}.Clamped().Hex()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Scene", "[2] Playground", "[3] Info", "[4] Compare"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
	if m.frame.Paused {
		spinner = "⏸"
	}

	status := accentStyle.Render(spinner) + " " + dimStyle.Render(m.statsLine())

	var help string
	switch m.viewMode {
	case ViewScene:
		help = "arrows: orbit | +/-: zoom | v: 3d/map | l: labels | c: center"
	case ViewPlayground:
		help = "↑↓: select | ←→: adjust | R: reset"
	case ViewInfo:
		help = "f: fact | x: deselect"
	case ViewCompare:
		help = "enter: add/remove | ←→: metric"
	}
	help += " | g: go to | p: pause | o: orbits | m: sound | ?: help | q: quit"

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + dimStyle.Render(help)
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

// statsLine summarizes what is loaded and how fast time runs.
func (m Model) statsLine() string {
	f := m.frame
	parts := []string{fmt.Sprintf("bodies %d", len(f.Placements))}
	if len(f.Belt) > 0 {
		parts = append(parts, fmt.Sprintf("asteroids %d", len(f.Belt)))
	}
	if l := m.composer.Loader(); l != nil {
		pending, ready, failed := l.Counts()
		parts = append(parts, fmt.Sprintf("textures %d/%d", ready, pending+ready+failed))
	}
	if f.Paused {
		parts = append(parts, "paused")
	} else {
		parts = append(parts, fmt.Sprintf("×%.1f", f.TimeScale))
	}
	parts = append(parts, fmt.Sprintf("t=%.1f", f.SimTime))
	if m.player != nil {
		parts = append(parts, "♪ "+onOff(!m.player.Muted()))
	}
	return strings.Join(parts, " · ")
}

// ViewMode returns the active view.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Frame returns the last composed frame.
func (m Model) Frame() scene.Frame {
	return m.frame
}

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
