package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pathfinder/internal/answers"
	"github.com/jonathan/pathfinder/internal/logging"
	"github.com/jonathan/pathfinder/internal/submission"
	"github.com/jonathan/pathfinder/internal/types"
	"github.com/jonathan/pathfinder/internal/wizard"
)

type harness struct {
	model  Model
	status *Status
	ctrl   *wizard.Controller
	fail   error
	calls  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{status: NewStatus()}
	analyzer := submission.AnalyzerFunc(func(context.Context, types.AnalyzeRequest) (*types.Recommendation, error) {
		h.calls++
		if h.fail != nil {
			return nil, h.fail
		}
		return &types.Recommendation{
			AIRecommendation: "Industry Path Recommended",
			ConfidenceLevel:  "High Confidence",
			KeyInsights:      []string{"You enjoy shipping products."},
			ActionItems:      []string{"Apply to internships"},
		}, nil
	})
	coord := submission.New(analyzer, submission.WithNotifier(h.status), submission.WithLogger(logging.NewTest(t)))
	h.ctrl = wizard.New(answers.New(), coord, logging.NewTest(t))
	h.model = New(context.Background(), h.ctrl, h.status)
	return h
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends keys and runs any returned command once, feeding its message back.
func (h *harness) press(t *testing.T, keys ...string) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for _, k := range keys {
		next, cmd := h.model.Update(keyMsg(k))
		h.model = next.(Model)
		last = cmd
	}
	return last
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	next, _ := h.model.Update(cmd())
	h.model = next.(Model)
}

func TestModel_WelcomeToAcademic(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.model.View(), "Welcome to PathFinder AI")

	h.press(t, "enter")
	assert.Equal(t, wizard.PageAcademic, h.ctrl.Page())
	view := h.model.View()
	assert.Contains(t, view, "Step 1 of 6")
	assert.Contains(t, view, "1. Academic Background")
}

func TestModel_SelectField(t *testing.T) {
	h := newHarness(t)
	h.press(t, "enter", "down", "space")

	want := types.FieldDomain.Options()[1].Value
	assert.Equal(t, want, h.ctrl.Answers().Academic.Domain)

	h.press(t, "up", "enter")
	assert.Equal(t, types.FieldDomain.Options()[0].Value, h.ctrl.Answers().Academic.Domain)
}

func TestModel_BackAndForth(t *testing.T) {
	h := newHarness(t)
	h.press(t, "enter", "right", "right")
	assert.Equal(t, wizard.PageMotivations, h.ctrl.Page())

	h.press(t, "left")
	assert.Equal(t, wizard.PageExperience, h.ctrl.Page())
}

func TestModel_SelectionLimit(t *testing.T) {
	h := newHarness(t)
	h.press(t, "enter", "right", "right")
	require.Equal(t, wizard.PageMotivations, h.ctrl.Page())

	h.press(t, "space", "down", "space", "down", "space")
	assert.Len(t, h.ctrl.Answers().WhyPhD, 2)

	kind, msg := h.status.Message()
	assert.Equal(t, submission.KindSelectionLimit, kind)
	assert.Equal(t, submission.SelectionLimitMessage, msg)
	assert.Contains(t, h.model.View(), submission.SelectionLimitMessage)
	assert.Nil(t, h.model.err)

	h.press(t, "left")
	_, msg = h.status.Message()
	assert.Empty(t, msg)
}

func TestModel_Ranking(t *testing.T) {
	h := newHarness(t)
	for h.ctrl.Page() != wizard.PagePriorities {
		h.press(t, "right")
	}
	opts := types.GroupPriorities.Options()

	h.press(t, "space", "down", "space")
	assert.Equal(t, []string{opts[0].Value, opts[1].Value}, h.ctrl.Answers().Priorities)

	h.press(t, "1")
	assert.Equal(t, []string{opts[1].Value, opts[0].Value}, h.ctrl.Answers().Priorities)
	assert.Contains(t, h.model.View(), "[1] "+opts[1].Label)

	h.press(t, "backspace")
	assert.Equal(t, []string{opts[0].Value}, h.ctrl.Answers().Priorities)

	h.press(t, "up", "space")
	assert.Empty(t, h.ctrl.Answers().Priorities)
}

func TestModel_SubmitSuccess(t *testing.T) {
	h := newHarness(t)
	for h.ctrl.Page() != wizard.PagePriorities {
		h.press(t, "right")
	}

	cmd := h.press(t, "right")
	require.NotNil(t, cmd)
	assert.True(t, h.model.Submitting())
	assert.Contains(t, h.model.View(), "AI is analyzing your profile...")

	h.press(t, "space", "left")
	assert.Empty(t, h.ctrl.Answers().Priorities, "edits are ignored while submitting")

	h.run(cmd)
	assert.False(t, h.model.Submitting())
	assert.Equal(t, wizard.PageResults, h.ctrl.Page())
	assert.Equal(t, 1, h.calls)

	view := h.model.View()
	assert.Contains(t, view, "Industry Path Recommended")
	assert.Contains(t, view, "You enjoy shipping products.")
	assert.Contains(t, view, "1. Apply to internships")
}

func TestModel_SubmitFailure(t *testing.T) {
	h := newHarness(t)
	h.fail = errors.New("connection refused")
	for h.ctrl.Page() != wizard.PagePriorities {
		h.press(t, "right")
	}

	h.run(h.press(t, "right"))
	assert.Equal(t, wizard.PagePriorities, h.ctrl.Page())
	assert.False(t, h.model.Submitting())

	kind, msg := h.status.Message()
	assert.Equal(t, submission.KindSubmissionFailed, kind)
	assert.Contains(t, h.model.View(), msg)
}

func TestModel_ResultsActions(t *testing.T) {
	h := newHarness(t)
	for h.ctrl.Page() != wizard.PagePriorities {
		h.press(t, "right")
	}
	h.run(h.press(t, "right"))
	require.Equal(t, wizard.PageResults, h.ctrl.Page())

	h.press(t, "a")
	assert.Contains(t, h.model.View(), "Edit analysis")
	h.press(t, "ctrl+s")
	before := h.ctrl.Analysis()

	h.press(t, "a", "!", "ctrl+s")
	assert.Equal(t, before+"!", h.ctrl.Analysis())

	h.press(t, "a", "x", "esc")
	assert.Equal(t, before+"!", h.ctrl.Analysis())

	h.press(t, "e")
	assert.Equal(t, wizard.PageAcademic, h.ctrl.Page())
}

func TestModel_Restart(t *testing.T) {
	h := newHarness(t)
	h.press(t, "enter", "space")
	for h.ctrl.Page() != wizard.PagePriorities {
		h.press(t, "right")
	}
	h.run(h.press(t, "right"))

	h.press(t, "r")
	assert.Equal(t, wizard.PageWelcome, h.ctrl.Page())
	assert.Empty(t, h.ctrl.Answers().Academic.Domain)
	assert.Nil(t, h.ctrl.Result())
}

func TestModel_Quit(t *testing.T) {
	h := newHarness(t)
	cmd := h.press(t, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, h.model.View())
}

func TestStatus(t *testing.T) {
	s := NewStatus()
	var n submission.Notifier = s
	n.Notify(submission.KindSubmissionFailed, "boom")

	kind, msg := s.Message()
	assert.Equal(t, submission.KindSubmissionFailed, kind)
	assert.Equal(t, "boom", msg)

	s.Clear()
	_, msg = s.Message()
	assert.Empty(t, msg)
}
