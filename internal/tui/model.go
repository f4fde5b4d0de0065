// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive terminal interface: a year selector and
// topic input that run a literature search, the resulting summary, and a
// chat over the same abstracts.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/pubmed-rag/internal/session"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// Focus tracks which input receives typed text.
type Focus int

const (
	FocusTopic Focus = iota
	FocusChat
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// Options configures a Model.
type Options struct {
	Orchestrator *session.Orchestrator
	Session      *session.Session
	DefaultYear  int
	ExportDir    string

	// Now supplies the current year for the selector's upper bound.
	Now func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	orch      *session.Orchestrator
	sess      *session.Session
	exportDir string

	year    int
	maxYear int

	topic    string
	question string
	focus    Focus

	busy     bool
	busyText string

	notice string
	kind   noticeKind

	width  int
	height int
	scroll int
}

// New creates a Model with an Idle session unless opts provides one.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	maxYear := now().Year()
	year := opts.DefaultYear
	if year == 0 {
		year = types.DefaultYear
	}
	year = clamp(year, types.EarliestYear, maxYear)

	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}
	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}
	return Model{
		orch:      opts.Orchestrator,
		sess:      sess,
		exportDir: dir,
		year:      year,
		maxYear:   maxYear,
		focus:     FocusTopic,
	}
}

// Session returns the model's current session.
func (m Model) Session() *session.Session { return m.sess }

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// searchCmd runs a search on a copy of the session.
func searchCmd(orch *session.Orchestrator, s *session.Session, topic string, year int) tea.Cmd {
	return func() tea.Msg {
		out, err := orch.Search(context.Background(), s, topic, year)
		return SearchDoneMsg{Session: s, Outcome: out, Err: err}
	}
}

// askCmd answers a question on a copy of the session.
func askCmd(orch *session.Orchestrator, s *session.Session, question string) tea.Cmd {
	return func() tea.Msg {
		_, err := orch.Ask(context.Background(), s, question)
		return AnswerDoneMsg{Session: s, Err: err}
	}
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SearchDoneMsg:
		m.busy = false
		m.busyText = ""
		if msg.Err != nil {
			m.setError(msg.Err)
			return m, nil
		}
		m.sess = msg.Session
		m.scroll = 0
		if msg.Outcome.Found == 0 {
			m.focus = FocusTopic
			m.setNotice(noticeWarning, msg.Outcome.Message())
			return m, nil
		}
		m.question = ""
		m.setNotice(noticeSuccess, msg.Outcome.Message())
		return m, nil

	case AnswerDoneMsg:
		m.busy = false
		m.busyText = ""
		if msg.Err != nil {
			m.setError(msg.Err)
			return m, nil
		}
		m.sess = msg.Session
		m.question = ""
		m.notice = ""
		m.scroll = m.maxScroll()
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
			return m, nil
		}
		m.setNotice(noticeInfo, fmt.Sprintf("%s saved to %s", msg.Kind, msg.Path))
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyCtrlC, KeyEsc:
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case KeyTab:
		if m.focus == FocusTopic && m.sess.HasCorpus() {
			m.focus = FocusChat
		} else {
			m.focus = FocusTopic
		}
		return m, nil

	case KeyLeft:
		m.year = clamp(m.year-1, types.EarliestYear, m.maxYear)
		return m, nil

	case KeyRight:
		m.year = clamp(m.year+1, types.EarliestYear, m.maxYear)
		return m, nil

	case KeyPgUp:
		m.scroll = clamp(m.scroll-m.pageSize(), 0, m.maxScroll())
		return m, nil

	case KeyPgDown:
		m.scroll = clamp(m.scroll+m.pageSize(), 0, m.maxScroll())
		return m, nil

	case KeyEnter:
		if m.focus == FocusChat {
			return m.submitQuestion()
		}
		return m.submitSearch()

	case KeyBackspace:
		m.editInput(func(s string) string {
			r := []rune(s)
			if len(r) == 0 {
				return s
			}
			return string(r[:len(r)-1])
		})
		return m, nil

	case KeyClearLine:
		m.editInput(func(string) string { return "" })
		return m, nil

	case KeyExportPDF:
		if !m.requireCorpus() {
			return m, nil
		}
		return m, exportPDFCmd(m.orch, m.sess.Clone(), m.exportDir)

	case KeySnapshot:
		if !m.requireCorpus() {
			return m, nil
		}
		return m, snapshotCmd(m.sess.Clone(), m.exportDir)

	case KeyCSL:
		if !m.requireCorpus() {
			return m, nil
		}
		return m, referencesCmd(m.sess.Clone(), m.exportDir)
	}

	switch msg.Type {
	case tea.KeyRunes:
		text := string(msg.Runes)
		m.editInput(func(s string) string { return s + text })
	case tea.KeySpace:
		m.editInput(func(s string) string { return s + " " })
	}
	return m, nil
}

func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	if !m.orch.Credential {
		m.setError(session.ErrMissingCredential)
		return m, nil
	}
	q, err := m.orch.Query(m.topic, m.year)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.busy = true
	m.busyText = fmt.Sprintf("Querying PubMed for %s...", q)
	m.notice = ""
	return m, searchCmd(m.orch, m.sess.Clone(), q.Topic, q.MinYear)
}

func (m Model) submitQuestion() (tea.Model, tea.Cmd) {
	if !m.sess.HasCorpus() {
		m.focus = FocusTopic
		m.setError(session.ErrNoCorpus)
		return m, nil
	}
	if strings.TrimSpace(m.question) == "" {
		return m, nil
	}
	m.busy = true
	m.busyText = "Analyzing..."
	m.notice = ""
	return m, askCmd(m.orch, m.sess.Clone(), m.question)
}

func (m *Model) editInput(edit func(string) string) {
	if m.focus == FocusChat {
		m.question = edit(m.question)
		return
	}
	m.topic = edit(m.topic)
}

func (m *Model) requireCorpus() bool {
	if m.sess.HasCorpus() {
		return true
	}
	m.setError(session.ErrNoCorpus)
	return false
}

func (m *Model) setNotice(kind noticeKind, text string) {
	m.kind = kind
	m.notice = text
}

func (m *Model) setError(err error) {
	kind := noticeError
	if errors.Is(err, session.ErrInvalidQuery) || errors.Is(err, session.ErrNoCorpus) || errors.Is(err, session.ErrEmptyQuestion) {
		kind = noticeWarning
	}
	m.setNotice(kind, session.ErrorMessage(err))
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.headerLines() {
		b.WriteString(line + "\n")
	}

	body := m.bodyLines()
	if n := m.bodyHeight(); n > 0 && len(body) > n {
		start := clamp(m.scroll, 0, len(body)-n)
		body = body[start : start+n]
	}
	for _, line := range body {
		b.WriteString(line + "\n")
	}

	if m.sess.HasCorpus() {
		b.WriteString(m.inputLine("Ask a question about these papers:", m.question, m.focus == FocusChat) + "\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) headerLines() []string {
	credential := KeyMissingStyle.Render("● No API Key found!")
	if m.orch != nil && m.orch.Credential {
		credential = KeyLoadedStyle.Render("● API Key Loaded Securely")
	}
	year := fmt.Sprintf("%s %s %s %s",
		LabelStyle.Render("Search papers from year:"),
		yearArrow(m.year > types.EarliestYear, "◀"),
		YearStyle.Render(fmt.Sprintf("%d", m.year)),
		yearArrow(m.year < m.maxYear, "▶"))

	return []string{
		TitleStyle.Render("PubMed Retrieval-Augmented Generation: Automated Literature Review"),
		SubtitleStyle.Render("Retrieves clinical abstracts, filters by date, and generates consensus summaries using AI."),
		credential,
		year,
		m.inputLine("Enter Research Topic:", m.topic, m.focus == FocusTopic),
		m.statusLine(),
	}
}

// yearArrow renders an arrow, dimmed when the direction is unavailable.
func yearArrow(enabled bool, arrow string) string {
	if enabled {
		return YearStyle.Render(arrow)
	}
	return DividerStyle.Render(arrow)
}

func (m Model) inputLine(label, value string, focused bool) string {
	if focused && !m.busy {
		return ActiveLabelStyle.Render(label) + " " + value + "█"
	}
	return LabelStyle.Render(label) + " " + value
}

func (m Model) statusLine() string {
	if m.busy {
		return BusyStyle.Render(m.busyText)
	}
	switch m.kind {
	case noticeSuccess:
		return SuccessStyle.Render(m.notice)
	case noticeWarning:
		return WarningStyle.Render(m.notice)
	case noticeError:
		return ErrorStyle.Render(m.notice)
	default:
		return InfoStyle.Render(m.notice)
	}
}

// bodyLines is the scrollable region: the summary and the transcript.
func (m Model) bodyLines() []string {
	if !m.sess.HasCorpus() {
		return nil
	}
	width := m.wrapWidth()
	divider := DividerStyle.Render(strings.Repeat("─", width))

	lines := []string{divider, SectionStyle.Render("Summary")}
	lines = append(lines, wrap(SummaryStyle, m.sess.Summary, width)...)
	lines = append(lines, divider, SectionStyle.Render("Chat with the data:"))
	for _, msg := range m.sess.Transcript {
		label := AssistantStyle.Render("Assistant:")
		if msg.Role == types.RoleUser {
			label = UserStyle.Render("You:")
		}
		lines = append(lines, label)
		lines = append(lines, wrap(lipgloss.NewStyle(), msg.Content, width)...)
	}
	return lines
}

func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"enter", "submit"},
		{"←/→", "year"},
		{"tab", "focus"},
		{"pgup/pgdn", "scroll"},
		{"^e", "pdf"},
		{"^s", "snapshot"},
		{"^r", "refs"},
		{"esc", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = FooterKeyStyle.Render(k.key) + " " + FooterDescStyle.Render(k.desc)
	}
	return strings.Join(parts, "  ")
}

func (m Model) wrapWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// bodyHeight is the number of body lines that fit, or 0 when the window
// size is unknown.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	fixed := len(m.headerLines()) + 2
	if n := m.height - fixed; n > 1 {
		return n
	}
	return 1
}

func (m Model) pageSize() int {
	if n := m.bodyHeight(); n > 0 {
		return n
	}
	return 10
}

func (m Model) maxScroll() int {
	n := m.bodyHeight()
	if n == 0 {
		return 0
	}
	if extra := len(m.bodyLines()) - n; extra > 0 {
		return extra
	}
	return 0
}

func wrap(style lipgloss.Style, text string, width int) []string {
	rendered := style.Width(width).Render(strings.TrimSpace(text))
	return strings.Split(rendered, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
