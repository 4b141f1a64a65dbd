// Package tui is the full-screen front end: a scrolling transcript above a
// single-line command input.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/assistant/internal/command"
)

// inputHeight and helpBarHeight are the lines reserved below the transcript.
const (
	inputHeight   = 1
	helpBarHeight = 1
)

// Handler turns one input line into a reply.
type Handler interface {
	Handle(line string) command.Reply
}

type entryKind int

const (
	entryBanner entryKind = iota
	entryEcho
	entryReply
	entryFailure
)

// entry is one transcript line (or block, for multi-line replies).
type entry struct {
	kind entryKind
	text string
}

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	handler    Handler
	prompt     string
	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	keys       keyMap
	transcript []entry
	width      int
	height     int
	done       bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPrompt sets the text shown before the input field.
func WithPrompt(p string) ModelOption {
	return func(m *Model) {
		m.prompt = p
	}
}

// NewModel creates a Model that sends submitted lines to h.
func NewModel(h Handler, opts ...ModelOption) Model {
	m := Model{
		handler:    h,
		prompt:     "> ",
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		keys:       defaultKeyMap(),
		transcript: []entry{{kind: entryBanner, text: command.MsgWelcome}},
	}
	for _, opt := range opts {
		opt(&m)
	}

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(m.prompt)
	ti.Focus()
	m.input = ti
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.prompt)-1, 0)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-inputHeight-helpBarHeight, 0)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and records both sides of the
// exchange in the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, entry{kind: entryEcho, text: m.prompt + line})
	reply := m.handler.Handle(line)
	kind := entryReply
	if reply.Failed {
		kind = entryFailure
	}
	m.transcript = append(m.transcript, entry{kind: kind, text: reply.Text})
	m.refresh()

	if reply.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	lines := make([]string, len(m.transcript))
	for i, e := range m.transcript {
		switch e.kind {
		case entryBanner:
			lines[i] = bannerStyle.Render(e.text)
		case entryEcho:
			lines[i] = echoStyle.Render(e.text)
		case entryFailure:
			lines[i] = failureStyle.Render(e.text)
		default:
			lines[i] = e.text
		}
	}
	return strings.Join(lines, "\n")
}

// View renders the transcript, the input line and the help bar.
// Before the first WindowSizeMsg the transcript is rendered unbounded.
func (m Model) View() string {
	body := m.viewport.View()
	if m.height == 0 {
		body = m.renderTranscript()
	}
	if m.done {
		return body + "\n"
	}
	return body + "\n" + m.input.View() + "\n" + m.help.View(m.keys)
}
