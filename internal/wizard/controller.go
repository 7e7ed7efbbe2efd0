package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/pathfinder/internal/answers"
	"github.com/jonathan/pathfinder/internal/logging"
	"github.com/jonathan/pathfinder/internal/selection"
	"github.com/jonathan/pathfinder/internal/submission"
	"github.com/jonathan/pathfinder/internal/types"
)

// ErrIllegalTransition is returned when an action is not allowed from the current page.
var ErrIllegalTransition = errors.New("illegal transition")

// Action names a navigation request.
type Action string

const (
	ActionAdvance Action = "advance"
	ActionRetreat Action = "retreat"
	ActionSubmit  Action = "submit"
	ActionRestart Action = "restart"
	ActionRevise  Action = "revise"
	ActionEdit    Action = "edit"
)

func illegal(from Page, action Action) error {
	return fmt.Errorf("%w: %s from %s", ErrIllegalTransition, action, from)
}

// Controller owns the page position and applies navigation and answer events.
//
// Answer events and navigation come from one goroutine. Page and Busy may be
// read from another goroutine while a submission runs.
type Controller struct {
	store       *answers.Store
	coordinator *submission.Coordinator
	logger      logging.Logger

	mu   sync.Mutex
	page Page
}

// New creates a Controller positioned on the welcome page.
func New(store *answers.Store, coordinator *submission.Coordinator, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Controller{
		store:       store,
		coordinator: coordinator,
		logger:      logger,
		page:        PageWelcome,
	}
}

// Page returns the current page.
func (c *Controller) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) setPage(p Page) {
	c.mu.Lock()
	from := c.page
	c.page = p
	c.mu.Unlock()
	c.logger.Debug("page changed", map[string]interface{}{"from": from.String(), "to": p.String()})
}

// Answers returns a copy of the current answers.
func (c *Controller) Answers() types.AnswerSet {
	return c.store.Answers()
}

// Result returns the current recommendation, or nil.
func (c *Controller) Result() *types.Recommendation {
	return c.coordinator.Result()
}

// Analysis returns the analysis text shown on the results page.
func (c *Controller) Analysis() string {
	return c.coordinator.Analysis()
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	return c.coordinator.Busy()
}

// Progress returns the 1-based input step and the number of input pages.
// The step is 0 outside the input pages.
func (c *Controller) Progress() (int, int) {
	p := c.Page()
	if !p.IsInput() {
		return 0, InputPages
	}
	return int(p), InputPages
}

// next is the forward transition. ok is false where Advance is not a plain move.
func next(p Page) (Page, bool) {
	switch p {
	case PageWelcome:
		return PageAcademic, true
	case PageAcademic:
		return PageExperience, true
	case PageExperience:
		return PageMotivations, true
	case PageMotivations:
		return PageWorkStyle, true
	case PageWorkStyle:
		return PageFutureVision, true
	case PageFutureVision:
		return PagePriorities, true
	case PagePriorities, PageSubmitting, PageResults:
		return p, false
	}
	return p, false
}

func prev(p Page) (Page, bool) {
	switch p {
	case PageAcademic:
		return PageWelcome, true
	case PageExperience:
		return PageAcademic, true
	case PageMotivations:
		return PageExperience, true
	case PageWorkStyle:
		return PageMotivations, true
	case PageFutureVision:
		return PageWorkStyle, true
	case PagePriorities:
		return PageFutureVision, true
	case PageWelcome, PageSubmitting, PageResults:
		return p, false
	}
	return p, false
}

// Advance moves to the next page. From the priorities page it submits.
func (c *Controller) Advance(ctx context.Context) error {
	from := c.Page()
	if from == PagePriorities {
		_, err := c.SubmitAndAdvance(ctx)
		return err
	}
	to, ok := next(from)
	if !ok {
		return illegal(from, ActionAdvance)
	}
	c.setPage(to)
	return nil
}

// Retreat moves to the previous page.
func (c *Controller) Retreat() error {
	from := c.Page()
	to, ok := prev(from)
	if !ok {
		return illegal(from, ActionRetreat)
	}
	c.setPage(to)
	return nil
}

// SubmitAndAdvance submits the answers from the priorities page. Success lands
// on the results page. Failure returns to the priorities page with the answers
// untouched, and the coordinator has already raised the notification.
func (c *Controller) SubmitAndAdvance(ctx context.Context) (*types.Recommendation, error) {
	from := c.Page()
	if from != PagePriorities {
		return nil, illegal(from, ActionSubmit)
	}

	c.setPage(PageSubmitting)
	result, err := c.coordinator.Submit(ctx, c.store.Answers())
	if err != nil {
		c.setPage(PagePriorities)
		return nil, err
	}
	c.setPage(PageResults)
	return result, nil
}

// Restart clears answers and result and returns to the welcome page.
func (c *Controller) Restart() error {
	from := c.Page()
	if from != PageResults {
		return illegal(from, ActionRestart)
	}
	c.store.Reset()
	c.coordinator.Clear()
	c.setPage(PageWelcome)
	return nil
}

// ReviseAnswers returns to the first input page keeping the answers.
func (c *Controller) ReviseAnswers() error {
	from := c.Page()
	if from != PageResults {
		return illegal(from, ActionRevise)
	}
	c.setPage(PageAcademic)
	return nil
}

// EditAnalysis replaces the analysis text on the results page.
func (c *Controller) EditAnalysis(text string) error {
	from := c.Page()
	if from != PageResults {
		return illegal(from, ActionEdit)
	}
	return c.coordinator.EditAnalysis(text)
}

func (c *Controller) guardEdit() error {
	if p := c.Page(); p == PageSubmitting {
		return illegal(p, ActionEdit)
	}
	return nil
}

// SetField sets a single-choice answer.
func (c *Controller) SetField(f types.Field, v string) error {
	if err := c.guardEdit(); err != nil {
		return err
	}
	return c.store.SetField(f, v)
}

// Toggle flips tag in a bounded group. A full group raises a selection-limit
// notification and leaves the answers unchanged.
func (c *Controller) Toggle(g types.Group, tag string) error {
	if err := c.guardEdit(); err != nil {
		return err
	}
	err := c.store.Toggle(g, tag)
	if errors.Is(err, selection.ErrSelectionLimit) {
		c.coordinator.Notifier().Notify(submission.KindSelectionLimit, submission.SelectionLimitMessage)
	}
	return err
}

// SetRank applies raw rank input for a priority tag. Input that is not a
// rank in 1..5 leaves the tag unranked.
func (c *Controller) SetRank(tag, raw string) error {
	if err := c.guardEdit(); err != nil {
		return err
	}
	return c.store.SetPriorityRank(tag, selection.ParseRank(raw))
}

// Rank returns the current rank of a priority tag, or 0.
func (c *Controller) Rank(tag string) int {
	return c.store.PriorityRank(tag)
}
