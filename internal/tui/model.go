// Package tui is the terminal front end of the assessment.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/pathfinder/internal/selection"
	"github.com/jonathan/pathfinder/internal/submission"
	"github.com/jonathan/pathfinder/internal/types"
	"github.com/jonathan/pathfinder/internal/wizard"
)

// row is one selectable option on an input page.
type row struct {
	field types.Field
	group types.Group
	opt   types.Option
}

func (r row) question() string {
	if r.field != "" {
		return r.field.Label()
	}
	return r.group.Label()
}

func rowsFor(p wizard.Page) []row {
	var rows []row
	for _, f := range p.Fields() {
		for _, o := range f.Options() {
			rows = append(rows, row{field: f, opt: o})
		}
	}
	for _, g := range p.Groups() {
		for _, o := range g.Options() {
			rows = append(rows, row{group: g, opt: o})
		}
	}
	return rows
}

type submitDoneMsg struct{ err error }

// Model implements tea.Model over a wizard.Controller.
type Model struct {
	ctx    context.Context
	ctrl   *wizard.Controller
	status *Status

	cursor     int
	submitting bool
	editing    bool
	editBuf    []rune
	err        error
	quitting   bool

	width int
}

// New creates the model. status should be the notifier the controller's
// coordinator was built with.
func New(ctx context.Context, ctrl *wizard.Controller, status *Status) Model {
	if status == nil {
		status = NewStatus()
	}
	return Model{ctx: ctx, ctrl: ctrl, status: status, width: 80}
}

// Init is called when the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case submitDoneMsg:
		m.submitting = false
		m.cursor = 0
		if msg.err == nil {
			m.status.Clear()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.submitting {
		return m, nil
	}
	if m.editing {
		return m.handleEditKey(msg)
	}
	if key == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	m.err = nil
	page := m.ctrl.Page()
	switch {
	case page == wizard.PageWelcome:
		if key == "enter" || key == "right" || key == "n" {
			m.navigate(m.ctrl.Advance(m.ctx))
		}
	case page.IsInput():
		return m.handleInputKey(key, page)
	case page == wizard.PageResults:
		m.handleResultsKey(key)
	}
	return m, nil
}

func (m Model) handleInputKey(key string, page wizard.Page) (tea.Model, tea.Cmd) {
	rows := rowsFor(page)
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case " ", "enter":
		if m.cursor < len(rows) {
			m.choose(rows[m.cursor])
		}
	case "1", "2", "3", "4", "5", "0", "backspace":
		if m.cursor < len(rows) && rows[m.cursor].group == types.GroupPriorities {
			raw := key
			if key == "backspace" {
				raw = ""
			}
			m.setErr(m.ctrl.SetRank(rows[m.cursor].opt.Value, raw))
		}
	case "left", "p", "shift+tab":
		m.navigate(m.ctrl.Retreat())
	case "right", "n", "tab":
		if page == wizard.PagePriorities {
			m.submitting = true
			m.status.Clear()
			return m, m.submit()
		}
		m.navigate(m.ctrl.Advance(m.ctx))
	}
	return m, nil
}

func (m *Model) choose(r row) {
	if r.field != "" {
		m.setErr(m.ctrl.SetField(r.field, r.opt.Value))
		return
	}
	if r.group == types.GroupPriorities {
		// Selecting an unranked priority appends it; selecting a ranked one removes it.
		if m.ctrl.Rank(r.opt.Value) > 0 {
			m.setErr(m.ctrl.SetRank(r.opt.Value, ""))
			return
		}
		next := len(m.ctrl.Answers().Priorities) + 1
		m.setErr(m.ctrl.SetRank(r.opt.Value, fmt.Sprint(next)))
		return
	}
	m.setErr(m.ctrl.Toggle(r.group, r.opt.Value))
}

func (m Model) submit() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_, err := ctrl.SubmitAndAdvance(ctx)
		return submitDoneMsg{err: err}
	}
}

func (m *Model) handleResultsKey(key string) {
	switch key {
	case "r":
		m.status.Clear()
		m.navigate(m.ctrl.Restart())
	case "e", "left":
		m.navigate(m.ctrl.ReviseAnswers())
	case "a":
		m.editing = true
		m.editBuf = []rune(m.ctrl.Analysis())
	}
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.editBuf = nil
	case tea.KeyCtrlS:
		m.setErr(m.ctrl.EditAnalysis(string(m.editBuf)))
		m.editing = false
		m.editBuf = nil
	case tea.KeyEnter:
		m.editBuf = append(m.editBuf, '\n')
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeySpace:
		m.editBuf = append(m.editBuf, ' ')
	case tea.KeyRunes:
		m.editBuf = append(m.editBuf, msg.Runes...)
	}
	return m, nil
}

func (m *Model) navigate(err error) {
	if err != nil {
		m.err = err
		return
	}
	m.cursor = 0
	m.status.Clear()
}

// setErr records unexpected errors. A full selection group is reported
// through the status line instead.
func (m *Model) setErr(err error) {
	if err != nil && !errors.Is(err, selection.ErrSelectionLimit) {
		m.err = err
	}
}

// Submitting reports whether a submission is running.
func (m Model) Submitting() bool {
	return m.submitting
}

// View renders the current page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	page := m.ctrl.Page()
	if m.submitting {
		page = wizard.PageSubmitting
	}

	var sections []string
	if step, total := m.ctrl.Progress(); step > 0 && !m.submitting {
		sections = append(sections, subtitleStyle.Render(fmt.Sprintf("Step %d of %d", step, total)))
	}
	sections = append(sections, titleStyle.Render(page.Title()))
	if sub := page.Subtitle(); sub != "" {
		sections = append(sections, subtitleStyle.Width(clampWidth(m.width-2, 76)).Render(sub))
	}
	sections = append(sections, "")

	switch {
	case page.IsInput():
		sections = append(sections, m.viewInputs(page))
	case page == wizard.PageResults:
		sections = append(sections, m.viewResults())
	}

	if kind, msg := m.status.Message(); msg != "" {
		style := infoStyle
		if kind == submission.KindSubmissionFailed || kind == submission.KindSelectionLimit {
			style = errorStyle
		}
		sections = append(sections, "", style.Render(msg))
	}
	if m.err != nil {
		sections = append(sections, "", errorStyle.Render(m.err.Error()))
	}

	sections = append(sections, "", footerStyle.Render(m.footer(page)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewInputs(page wizard.Page) string {
	answers := m.ctrl.Answers()
	var b strings.Builder
	last := ""
	for i, r := range rowsFor(page) {
		if q := r.question(); q != last {
			if last != "" {
				b.WriteString("\n")
			}
			b.WriteString(questionStyle.Render(q) + "\n")
			last = q
		}

		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		var mark string
		switch {
		case r.field != "":
			mark = "( )"
			if answers.Value(r.field) == r.opt.Value {
				mark = "(•)"
			}
		case r.group == types.GroupPriorities:
			mark = "[ ]"
			if rank := m.ctrl.Rank(r.opt.Value); rank > 0 {
				mark = fmt.Sprintf("[%d]", rank)
			}
		default:
			mark = "[ ]"
			for _, t := range answers.Tags(r.group) {
				if t == r.opt.Value {
					mark = "[x]"
				}
			}
		}

		line := mark + " " + r.opt.Label
		if mark != "( )" && mark != "[ ]" {
			line = selectedStyle.Render(line)
		}
		b.WriteString(pointer + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewResults() string {
	rec := m.ctrl.Result()
	if rec == nil {
		return ""
	}

	header := resultBox.Render(titleStyle.Render(rec.AIRecommendation) + "\n" + subtitleStyle.Render(rec.ConfidenceLevel))
	sections := []string{header, ""}

	if m.editing {
		sections = append(sections, questionStyle.Render("Edit analysis (ctrl+s to save, esc to cancel)"), string(m.editBuf)+cursorStyle.Render("▌"))
	} else {
		sections = append(sections, lipgloss.NewStyle().Width(clampWidth(m.width-2, 76)).Render(m.ctrl.Analysis()))
	}

	if len(rec.KeyInsights) > 0 {
		sections = append(sections, "", questionStyle.Render("Key Insights"))
		for _, s := range rec.KeyInsights {
			sections = append(sections, "  • "+s)
		}
	}
	if len(rec.ActionItems) > 0 {
		sections = append(sections, "", questionStyle.Render("Recommended Action Items"))
		for i, s := range rec.ActionItems {
			sections = append(sections, fmt.Sprintf("  %d. %s", i+1, s))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) footer(page wizard.Page) string {
	switch {
	case m.submitting:
		return "ctrl+c quit"
	case m.editing:
		return "ctrl+s save • esc cancel"
	case page == wizard.PageWelcome:
		return "enter start • q quit"
	case page == wizard.PagePriorities:
		return "↑/↓ move • space add/remove • 1-5 set rank • ← back • → get recommendation • q quit"
	case page.IsInput():
		return "↑/↓ move • space select • ← back • → next • q quit"
	case page == wizard.PageResults:
		return "a edit analysis • e revise answers • r start over • q quit"
	}
	return "q quit"
}
