// Package tui provides a Bubble Tea terminal user interface for tracknest.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tracknest/internal/config"
	"tracknest/internal/library"
	"tracknest/internal/media"
	"tracknest/internal/model"
	"tracknest/internal/scan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scan.Level
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	logs      []LogEntry
	events    chan scan.Event
	err       error

	// Scan results
	albums     []*model.AlbumNode
	trackCount int
	duplicates map[string][]string
	cueSheets  []string

	// Options
	writeCue  bool
	duplicate bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music/library"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// EventMsg carries one scanner event into the UI.
	EventMsg struct {
		Event scan.Event
	}

	// ScanDoneMsg is sent when the scan and post-processing finish.
	ScanDoneMsg struct {
		Albums     []*model.AlbumNode
		Tracks     int
		Duplicates map[string][]string
		CueSheets  []string
		Err        error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateScanning
				m.events = make(chan scan.Event, 64)
				return m, tea.Batch(m.startScan(), m.waitForEvent(), m.spinner.Tick)
			}

		case "w":
			if m.state == StateInput {
				m.writeCue = !m.writeCue
			}

		case "u":
			if m.state == StateInput {
				m.duplicate = !m.duplicate
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new scan
				m.state = StateInput
				m.logs = nil
				m.albums = nil
				m.trackCount = 0
				m.duplicates = nil
				m.cueSheets = nil
				m.err = nil
				m.events = nil
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EventMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level != scan.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.waitForEvent())

	case ScanDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.albums = msg.Albums
			m.trackCount = msg.Tracks
			m.duplicates = msg.Duplicates
			m.cueSheets = msg.CueSheets
			m.state = StateComplete
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// waitForEvent returns a command that delivers the next scanner event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Tracknest"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Organize your music library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter library path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	writeCheck := "[ ]"
	if m.writeCue {
		writeCheck = "[×]"
	}
	duplicateCheck := "[ ]"
	if m.duplicate {
		duplicateCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Write missing CUE sheets (w)\n", writeCheck))
	b.WriteString(fmt.Sprintf("  %s Detect duplicate files (u)\n", duplicateCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Max depth: %d", m.settings.MaxDepth)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning library..."))
	b.WriteString("\n\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	summary := fmt.Sprintf(
		"✨ Scan Complete!\n\n"+
			"Albums: %d\n"+
			"Tracks: %d",
		len(m.albums),
		m.trackCount,
	)
	if m.duplicate {
		summary += fmt.Sprintf("\nDuplicate groups: %d", len(m.duplicates))
	}
	if m.writeCue {
		summary += fmt.Sprintf("\nCUE sheets written: %d", len(m.cueSheets))
	}
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n\n")

	// Album listing
	limit := len(m.albums)
	if limit > 10 {
		limit = 10
	}
	for _, album := range m.albums[:limit] {
		b.WriteString(albumStyle.Render(fmt.Sprintf("  ♪ %s (%d tracks)", album.Title, len(album.Tracks))))
		b.WriteString("\n")
	}
	if len(m.albums) > limit {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.albums)-limit)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case scan.LevelError:
			style = errorStyle
			prefix = "✗"
		case scan.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scan.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scan.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • w: write cue • u: duplicates • v: verbose • esc: quit"
	case StateScanning:
		return "ctrl+c: quit"
	case StateComplete, StateError:
		return "r: new scan • q: quit"
	}
	return ""
}

// startScan runs the scan in the background and reports the outcome.
func (m *Model) startScan() tea.Cmd {
	path := m.textInput.Value()
	opts := m.settings.ScanOptions()
	events := m.events
	writeCue := m.writeCue
	duplicate := m.duplicate

	return func() tea.Msg {
		defer close(events)

		prober := media.NewFileProber()
		records, err := library.ScanRoots([]string{path}, opts, prober, func(e scan.Event) {
			events <- e
		})
		if err != nil {
			return ScanDoneMsg{Err: err}
		}

		albums := library.GroupAlbums(records)

		var duplicates map[string][]string
		if duplicate {
			duplicates = library.DetectDuplicates(albums)
		}

		var cueSheets []string
		if writeCue {
			cueSheets, err = library.WriteCueSheets(albums)
			if err != nil {
				return ScanDoneMsg{Err: err}
			}
		}

		return ScanDoneMsg{
			Albums:     albums,
			Tracks:     len(records),
			Duplicates: duplicates,
			CueSheets:  cueSheets,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
