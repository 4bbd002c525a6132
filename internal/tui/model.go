package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// maxLogLines is the number of trailing log lines shown under an expanded vertex.
const maxLogLines = 5

// VertexState represents the current state of an action vertex in the TUI.
type VertexState struct {
	ID       string
	Name     string
	Status   string
	Expanded bool
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	log       lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, managing vertices and tape updates.
type Model struct {
	tape     TapeSource
	vertices []VertexState
	index    map[string]int
	logs     map[string][]string
	partial  map[string]string
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		index:   make(map[string]int),
		logs:    make(map[string][]string),
		partial: make(map[string]string),
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // Blue
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			log:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		if v.Internal {
			continue
		}
		m.applyVertex(v)
	}
	for _, l := range update.Logs {
		if _, ok := m.index[l.Vertex]; ok {
			m.appendLog(l.Vertex, l.Data)
		}
	}
}

func (m *Model) applyVertex(v *progrock.Vertex) {
	i, ok := m.index[v.Id]
	if !ok {
		// The newest action takes focus.
		for j := range m.vertices {
			if m.vertices[j].Status != statusFailed {
				m.vertices[j].Expanded = false
			}
		}
		i = len(m.vertices)
		m.index[v.Id] = i
		m.vertices = append(m.vertices, VertexState{
			ID:       v.Id,
			Name:     v.Name,
			Status:   statusRunning,
			Expanded: true,
		})
	}

	state := &m.vertices[i]
	switch {
	case v.Completed == nil:
		return
	case v.Error != nil:
		state.Status = statusFailed
		state.Expanded = true
	case v.Cached:
		state.Status = statusCached
		state.Expanded = false
	default:
		state.Status = statusCompleted
		state.Expanded = false
	}
}

func (m *Model) appendLog(id string, data []byte) {
	text := m.partial[id] + string(data)
	lines := strings.Split(text, "\n")
	m.partial[id] = lines[len(lines)-1]

	logs := append(m.logs[id], lines[:len(lines)-1]...)
	if len(logs) > maxLogLines {
		logs = logs[len(logs)-maxLogLines:]
	}
	m.logs[id] = logs
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var lines []string
	for _, v := range m.vertices {
		var icon string
		var style lipgloss.Style
		switch v.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusCached:
			icon = "↺"
			style = m.styles.cached
		default:
			icon = "✗"
			style = m.styles.failed
		}
		lines = append(lines, fmt.Sprintf("%s %s", style.Render(icon), v.Name))

		if !v.Expanded {
			continue
		}
		logs := m.logs[v.ID]
		if len(logs) > maxLogLines {
			logs = logs[len(logs)-maxLogLines:]
		}
		for _, l := range logs {
			lines = append(lines, "    "+m.styles.log.Render(m.truncate(l)))
		}
	}

	// Keep the most recent lines when the terminal is too short.
	if m.height > 0 && len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}

	var s strings.Builder
	for _, l := range lines {
		s.WriteString(l)
		s.WriteByte('\n')
	}
	return s.String()
}

func (m *Model) truncate(line string) string {
	limit := m.width - 4
	if limit <= 0 || len(line) <= limit {
		return line
	}
	return line[:limit]
}
