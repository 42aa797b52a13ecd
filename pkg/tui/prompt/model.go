// Package prompt is the interactive session: a live-rendered view of the
// tracker above a single-line command prompt with ghost-text completion.
package prompt

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/ambit/pkg/interp"
	"tableflip.dev/ambit/pkg/state"
	"tableflip.dev/ambit/pkg/store"
)

// completeDelay is the window a completed task stays visible before the
// mutation lands, matching the strike-through transition.
const completeDelay = 500 * time.Millisecond

const repaintInterval = 250 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	doneStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	emptyStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type repaintMsg struct{}

func repaintTick() tea.Cmd {
	return tea.Tick(repaintInterval, func(time.Time) tea.Msg {
		return repaintMsg{}
	})
}

// applyMsg carries a deferred-completion continuation into Update, so the
// mutation runs on the program goroutine instead of the timer's.
type applyMsg struct {
	fn func()
}

func waitForApply(ch chan func()) tea.Cmd {
	return func() tea.Msg {
		return applyMsg{fn: <-ch}
	}
}

// Model is the bubbletea model for the prompt session.
type Model struct {
	input  textinput.Model
	interp *interp.Interpreter
	st     *state.AppState

	history      []string
	historyIndex int

	hint          string
	hinting       bool
	showCompleted bool

	fires chan func()

	width    int
	height   int
	quitting bool
}

// New builds the session model. Saves happen through the interpreter's
// change hook, fire-and-forget relative to input handling.
func New(st *state.AppState, persistence store.Persistence) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "+ category · category: task by fri · done task"
	ti.Focus()

	fires := make(chan func(), 16)

	in := interp.New()
	in.CompleteDelay = completeDelay
	// Timers only hand their continuation to the message loop; the state
	// mutation itself happens inside Update, on the program goroutine.
	in.Schedule = func(d time.Duration, fn func()) func() {
		t := time.AfterFunc(d, func() { fires <- fn })
		return func() { t.Stop() }
	}
	if persistence != nil {
		in.OnChange = func(s *state.AppState) {
			_ = persistence.Save(s)
		}
	}

	return Model{
		input:         ti,
		interp:        in,
		st:            st,
		hinting:       true,
		showCompleted: true,
		fires:         fires,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, repaintTick(), waitForApply(m.fires))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case repaintMsg:
		m.refreshHint()
		return m, repaintTick()

	case applyMsg:
		msg.fn()
		m.refreshHint()
		return m, waitForApply(m.fires)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.interp.Execute(line, m.st, time.Now())
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != trimmed {
					m.history = append(m.history, trimmed)
				}
			}
			m.historyIndex = len(m.history)
			m.input.SetValue("")
			m.hint = ""
			return m, nil

		case "tab":
			if s, ok := m.interp.Suggest(m.input.Value(), m.st); ok {
				m.input.SetValue(s.Line())
				m.input.CursorEnd()
				m.refreshHint()
			}
			return m, nil

		case "up":
			if m.historyIndex > 0 {
				m.historyIndex--
				m.input.SetValue(m.history[m.historyIndex])
				m.input.CursorEnd()
				m.refreshHint()
			}
			return m, nil

		case "down":
			if m.historyIndex < len(m.history) {
				m.historyIndex++
				value := ""
				if m.historyIndex < len(m.history) {
					value = m.history[m.historyIndex]
				}
				m.input.SetValue(value)
				m.input.CursorEnd()
				m.refreshHint()
			}
			return m, nil

		case "ctrl+t":
			m.showCompleted = !m.showCompleted
			return m, nil

		case "ctrl+g":
			m.hinting = !m.hinting
			m.refreshHint()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshHint()
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, name := range m.st.DisplayOrder() {
		title := name
		if name == m.st.Focused {
			title = "> " + name
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(m.renderTasks(m.st.Categories[name]))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab complete · ↑/↓ history · ctrl+t completed · ctrl+g hints · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTasks(tasks []*state.Task) string {
	ordered := make([]*state.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Completed && ordered[j].Completed
	})

	var b strings.Builder
	shown := 0
	for _, task := range ordered {
		if task.Completed && !m.showCompleted {
			continue
		}
		shown++
		line := "- " + task.Text
		if task.Completed {
			line = doneStyle.Render("+ " + task.Text)
		}
		b.WriteString(line)
		if task.Due != nil {
			b.WriteString(dueStyle.Render(" [" + task.Due.Format("1/2") + "]"))
		}
		b.WriteString("\n")
	}
	if shown == 0 {
		b.WriteString(emptyStyle.Render(" none"))
		b.WriteString("\n")
	}
	return b.String()
}

// refreshHint recomputes the ghost completion shown under the prompt. The
// hint hides once the input already equals the completed line.
func (m *Model) refreshHint() {
	if !m.hinting {
		m.hint = ""
		return
	}
	text := m.input.Value()
	if s, ok := m.interp.Suggest(text, m.st); ok && text != s.Line() {
		m.hint = s.Line()
		return
	}
	m.hint = ""
}
