// Package tui provides the Bubble Tea shape inspector and its SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shapekit/internal/canvas"
	"github.com/vovakirdan/shapekit/internal/scene"
)

const (
	growFactor   = 1.25
	shrinkFactor = 0.8

	// Rows reserved below the canvas for the status and help lines.
	chromeRows = 2
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// Model is the Bubble Tea model for inspecting a scene.
type Model struct {
	scene    *scene.Scene
	screen   *canvas.Screen
	keys     KeyMap
	help     help.Model
	selected int
	labels   bool
	blinkOn  bool
	note     string
	quitting bool
}

// NewModel creates an inspector for sc sized to the scene canvas.
func NewModel(sc *scene.Scene) Model {
	return Model{
		scene:   sc,
		screen:  canvas.NewScreen(sc.Width, sc.Height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		labels:  true,
		blinkOn: true,
	}
}

// Init starts the selection blink.
func (m Model) Init() tea.Cmd {
	return blinkCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case BlinkMsg:
		return m.handleBlink()
	}

	return m, nil
}

// Selected returns the currently selected shape, or nil for an empty scene.
func (m Model) Selected() *scene.Shape {
	if len(m.scene.Shapes) == 0 {
		return nil
	}
	return m.scene.Shapes[m.selected]
}

// Scene returns the scene being inspected.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.note = ""
	n := len(m.scene.Shapes)
	sel := m.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Labels):
		m.labels = !m.labels
	case key.Matches(msg, m.keys.Save):
		m.note = m.saveScene()
	case key.Matches(msg, m.keys.Snapshot):
		m.note = m.saveSnapshot()
	case n == 0:
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % n
	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selected + n - 1) % n
	case key.Matches(msg, m.keys.Up):
		sel.Move(0, -1)
	case key.Matches(msg, m.keys.Down):
		sel.Move(0, 1)
	case key.Matches(msg, m.keys.Left):
		sel.Move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		sel.Move(1, 0)
	case key.Matches(msg, m.keys.Grow):
		if err := sel.Scale(growFactor); err != nil {
			m.note = err.Error()
		}
	case key.Matches(msg, m.keys.Shrink):
		if err := sel.Scale(shrinkFactor); err != nil {
			m.note = err.Error()
		}
	case key.Matches(msg, m.keys.Normalize):
		if sel.Normalize() {
			m.note = "normalized " + sel.Name
		}
	}

	m.blinkOn = true
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 0))
	return m, nil
}

// handleBlink toggles the selection highlight.
func (m Model) handleBlink() (tea.Model, tea.Cmd) {
	m.blinkOn = !m.blinkOn
	return m, blinkCmd()
}

// draw renders the scene into the screen buffer.
func (m Model) draw() {
	opts := DrawOptions{Labels: m.labels}
	if m.blinkOn {
		opts.Selected = m.Selected()
	}
	DrawScene(m.screen, m.scene, opts)
}

// statusLine describes the selected shape and what it collides with.
func (m Model) statusLine() string {
	sel := m.Selected()
	if sel == nil {
		return statusStyle.Render(m.scene.Name + ": no shapes")
	}

	var sb strings.Builder
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%s  %s", sel.Name, sel.Value())))

	hits := m.scene.Colliding(sel)
	if len(hits) > 0 {
		names := make([]string, len(hits))
		for i, h := range hits {
			names[i] = h.Name
		}
		sb.WriteString("  ")
		sb.WriteString(hitStyle.Render("hits: " + strings.Join(names, ", ")))
	}
	if m.note != "" {
		sb.WriteString("  ")
		sb.WriteString(noteStyle.Render(m.note))
	}
	return sb.String()
}

// saveScene writes the edited scene next to the user's saved scenes.
func (m Model) saveScene() string {
	path, err := scene.Save(m.scene, m.scene.Name+"-edited")
	if err != nil {
		return "save failed: " + err.Error()
	}
	return "saved " + path
}

// saveSnapshot writes the current canvas as plain text.
func (m Model) saveSnapshot() string {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "snapshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".shapekit", "snapshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "snapshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scene.Name, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "snapshot failed: " + err.Error()
	}
	return "snapshot " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.statusLine() + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given scene.
func Run(sc *scene.Scene) error {
	p := tea.NewProgram(
		NewModel(sc),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
