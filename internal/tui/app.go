// internal/tui/app.go
//
// This is the interactive prompt for pyre. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// Only the prompt line and its status row are managed here. Submitted
// statements and their confirmations scroll into the terminal's own
// history with tea.Println, so the transcript survives after pyre exits.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dscorbett/pyre/internal/session"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// App is the prompt model. It holds the session, the line editor, and the
// input history.
type App struct {
	session *session.Session
	prompt  string
	input   textinput.Model

	// Submitted lines, oldest first. cursor == len(history) means the
	// live line is being edited; draft stashes it while browsing.
	history []string
	cursor  int
	draft   string

	quitting bool
}

// NewApp builds the prompt around an existing session.
func NewApp(sess *session.Session, prompt string) *App {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.Focus()
	return &App{session: sess, prompt: prompt, input: input}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.input.Width = max(20, msg.Width-lipgloss.Width(a.prompt)-2)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.quitting = true
			return a, tea.Quit
		case "ctrl+d":
			// EOF on an empty line ends the session, as it would on stdin.
			if a.input.Value() == "" {
				a.quitting = true
				return a, tea.Quit
			}
		case "enter":
			return a, a.submit()
		case "up":
			a.recallPrev()
			return a, nil
		case "down":
			a.recallNext()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit evaluates the current line and turns the outcome into scrollback.
func (a *App) submit() tea.Cmd {
	line := a.input.Value()
	a.pushHistory(line)
	a.input.Reset()

	echo := echoStyle.Render(a.prompt + line)
	reply, err := a.session.Eval(line)
	if err != nil {
		return tea.Println(echo + "\n" + errorStyle.Render(err.Error()))
	}
	switch reply.Kind {
	case session.ReplyQuit:
		a.quitting = true
		return tea.Sequence(tea.Println(echo), tea.Quit)
	case session.ReplyApplied:
		return tea.Println(echo + "\n" + strings.Join(reply.Lines, "\n"))
	default:
		return tea.Println(echo)
	}
}

func (a *App) pushHistory(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed != "" && (len(a.history) == 0 || a.history[len(a.history)-1] != trimmed) {
		a.history = append(a.history, trimmed)
	}
	a.cursor = len(a.history)
	a.draft = ""
}

func (a *App) recallPrev() {
	if a.cursor == 0 || len(a.history) == 0 {
		return
	}
	if a.cursor == len(a.history) {
		a.draft = a.input.Value()
	}
	a.cursor--
	a.input.SetValue(a.history[a.cursor])
	a.input.CursorEnd()
}

func (a *App) recallNext() {
	if a.cursor >= len(a.history) {
		return
	}
	a.cursor++
	if a.cursor == len(a.history) {
		a.input.SetValue(a.draft)
	} else {
		a.input.SetValue(a.history[a.cursor])
	}
	a.input.CursorEnd()
}

// View renders the prompt line and a one-row status hint.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	status := hintStyle.Render(fmt.Sprintf("%d phoneme(s) · ctrl+d to quit", a.session.Table().Len()))
	return a.input.View() + "\n" + status
}
