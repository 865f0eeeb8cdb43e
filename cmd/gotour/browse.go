package main

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rajtank4457/gotour/tour"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type browseModel struct {
	textInput    textinput.Model
	runner       *tour.Runner
	capture      *bytes.Buffer
	titles       []string
	history      []historyEntry
	cmdHistory   []string
	historyIdx   int
	width        int
	height       int
	showHelp     bool
	showSections bool
	quitting     bool
	initialized  bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlS key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous input")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next input")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run section")),
	CtrlC: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	CtrlD: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "quit")),
	CtrlL: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Tab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "autocomplete")),
	CtrlS: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "toggle sections")),
	CtrlK: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "toggle help")),
}

func newBrowseModel(echoArgs []string) browseModel {
	ti := textinput.New()
	ti.Placeholder = "section name or number..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "tour> "

	capture := &bytes.Buffer{}
	runner := tour.NewRunner(tour.Config{
		Output: capture,
		Args:   append([]string{}, echoArgs...),
	})

	return browseModel{
		textInput:    ti,
		runner:       runner,
		capture:      capture,
		titles:       runner.Titles(),
		history:      make([]historyEntry, 0),
		cmdHistory:   make([]string, 0),
		historyIdx:   -1,
		showSections: true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlS):
			m.showSections = !m.showSections
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var teaCmd tea.Cmd
				m, teaCmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, teaCmd
			}

			output, isErr := m.runSection(input)
			m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m browseModel) handleCommand(input string) (browseModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp

	case ":list", ":l":
		m.showSections = !m.showSections

	case ":all", ":a":
		output, isErr := m.runAll()
		m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})

	case ":clear", ":c":
		m.history = make([]historyEntry, 0)

	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit

	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}

	return m, nil
}

// runSection resolves input to a section title, runs it, and returns the
// captured output.
func (m browseModel) runSection(input string) (string, bool) {
	title, ok := m.resolveTitle(input)
	if !ok {
		return fmt.Sprintf("No section %q (ctrl+s shows the list)", input), true
	}

	m.capture.Reset()
	if err := m.runner.RunSection(context.Background(), title); err != nil {
		return err.Error(), true
	}
	return strings.TrimSpace(m.capture.String()), false
}

func (m browseModel) runAll() (string, bool) {
	m.capture.Reset()
	if err := m.runner.Run(context.Background()); err != nil {
		return err.Error(), true
	}
	return strings.TrimSpace(m.capture.String()), false
}

// resolveTitle accepts a 1-based section number or a case-insensitive title.
func (m browseModel) resolveTitle(input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(m.titles) {
			return "", false
		}
		return m.titles[n-1], true
	}
	for _, title := range m.titles {
		if strings.EqualFold(title, input) {
			return title, true
		}
	}
	return "", false
}

func (m browseModel) handleAutocomplete() browseModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	var completions []string
	for _, c := range []string{":all", ":clear", ":help", ":list", ":quit"} {
		if strings.HasPrefix(c, input) {
			completions = append(completions, c)
		}
	}
	lowered := strings.ToLower(input)
	for _, title := range m.titles {
		if strings.HasPrefix(strings.ToLower(title), lowered) {
			completions = append(completions, title)
		}
	}

	if len(completions) == 1 {
		m.textInput.SetValue(completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(completions, ", "),
		})
	}

	return m
}

func (m browseModel) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Go Feature Tour")
	version := mutedStyle.Render("v0.1.0")
	b.WriteString(header + " " + version + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	if m.showSections {
		reservedLines += len(m.titles) + 3
	}
	availableLines := m.height - reservedLines

	// Section output spans several lines per entry, so trim history by
	// rendered line count rather than entry count.
	rendered := make([]string, len(m.history))
	for i, entry := range m.history {
		rendered[i] = renderEntry(entry)
	}
	total := 0
	start := len(rendered)
	for start > 0 {
		lines := strings.Count(rendered[start-1], "\n") + 1
		if total+lines > availableLines {
			break
		}
		total += lines
		start--
	}
	for _, s := range rendered[start:] {
		b.WriteString(s)
	}

	if m.showSections {
		b.WriteString(renderSectionsPanel(m.titles))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+s") + helpDescStyle.Render(" sections  ") +
		helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderEntry(entry historyEntry) string {
	var b strings.Builder
	if entry.input != "" {
		b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
	}
	if entry.isErr {
		b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
	} else {
		for _, line := range strings.Split(entry.output, "\n") {
			b.WriteString("  " + outputStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderSectionsPanel(titles []string) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Sections"))
	numberStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for i, title := range titles {
		lines = append(lines, fmt.Sprintf("  %s  %s", numberStyle.Render(fmt.Sprintf("%2d", i+1)), title))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"1-11", "Run a section by number"},
		{"name", "Run a section by title"},
		{"↑/↓", "Navigate input history"},
		{"Tab", "Autocomplete"},
		{":all", "Run every section in order"},
		{":list", "Toggle the sections panel"},
		{":clear", "Clear history"},
		{":help", "Toggle this help"},
		{":quit", "Exit the browser"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc)))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runBrowser(echoArgs []string) error {
	p := tea.NewProgram(newBrowseModel(echoArgs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
