// Package answers holds the in-progress assessment and the setters that mutate it.
package answers

import (
	"fmt"

	"github.com/jonathan/pathfinder/internal/selection"
	"github.com/jonathan/pathfinder/internal/types"
)

// InvalidValueError is returned when a value is not legal for its field or group.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// Store owns the answer set for one session. It is not safe for concurrent use.
type Store struct {
	answers types.AnswerSet
}

// New returns a store holding the empty form.
func New() *Store {
	return &Store{}
}

// Answers returns a deep copy of the current answer set.
func (s *Store) Answers() types.AnswerSet {
	return s.answers.Clone()
}

// Reset restores the empty form.
func (s *Store) Reset() {
	s.answers = types.AnswerSet{}
}

// Load replaces the whole answer set after checking every leaf and group.
func (s *Store) Load(a types.AnswerSet) error {
	for _, f := range types.Fields() {
		if v := a.Value(f); !f.Allows(v) {
			return &InvalidValueError{Field: string(f), Value: v}
		}
	}
	if err := checkGroup(types.GroupWhyPhD, a.WhyPhD, types.MaxReasons); err != nil {
		return err
	}
	if err := checkGroup(types.GroupWhyIndustry, a.WhyIndustry, types.MaxReasons); err != nil {
		return err
	}
	if err := checkGroup(types.GroupPriorities, a.Priorities, types.GroupPriorities.Universe()); err != nil {
		return err
	}
	s.answers = a.Clone()
	return nil
}

func checkGroup(g types.Group, tags []string, limit int) error {
	if len(tags) > limit {
		return &selection.Error{
			Message: fmt.Sprintf("%s holds %d tags", g, len(tags)),
			Cause:   selection.ErrSelectionLimit,
		}
	}
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if !g.Allows(t) || seen[t] {
			return &InvalidValueError{Field: string(g), Value: t}
		}
		seen[t] = true
	}
	return nil
}

// SetField sets a single-choice field by name.
func (s *Store) SetField(f types.Field, v string) error {
	if !f.Allows(v) {
		return &InvalidValueError{Field: string(f), Value: v}
	}
	switch f {
	case types.FieldDomain:
		s.answers.Academic.Domain = v
	case types.FieldGPARange:
		s.answers.Academic.GPARange = v
	case types.FieldPapers:
		s.answers.Academic.Papers = v
	case types.FieldThesis:
		s.answers.Academic.Thesis = v
	case types.FieldInternship:
		s.answers.Experience.Internship = v
	case types.FieldResearch:
		s.answers.Experience.Research = v
	case types.FieldTeaching:
		s.answers.Experience.Teaching = v
	case types.FieldEnjoyed:
		s.answers.Experience.Enjoyed = v
	case types.FieldEnvironment:
		s.answers.WorkStyle.Environment = v
	case types.FieldPreference:
		s.answers.WorkStyle.Preference = v
	case types.FieldFutureVision:
		s.answers.FutureVision = v
	}
	return nil
}

func (s *Store) SetDomain(v string) error       { return s.SetField(types.FieldDomain, v) }
func (s *Store) SetGPARange(v string) error     { return s.SetField(types.FieldGPARange, v) }
func (s *Store) SetPapers(v string) error       { return s.SetField(types.FieldPapers, v) }
func (s *Store) SetThesis(v string) error       { return s.SetField(types.FieldThesis, v) }
func (s *Store) SetInternship(v string) error   { return s.SetField(types.FieldInternship, v) }
func (s *Store) SetResearch(v string) error     { return s.SetField(types.FieldResearch, v) }
func (s *Store) SetTeaching(v string) error     { return s.SetField(types.FieldTeaching, v) }
func (s *Store) SetEnjoyed(v string) error      { return s.SetField(types.FieldEnjoyed, v) }
func (s *Store) SetEnvironment(v string) error  { return s.SetField(types.FieldEnvironment, v) }
func (s *Store) SetPreference(v string) error   { return s.SetField(types.FieldPreference, v) }
func (s *Store) SetFutureVision(v string) error { return s.SetField(types.FieldFutureVision, v) }

// ToggleWhyPhD flips a PhD motivation tag. A full group yields
// selection.ErrSelectionLimit and no change.
func (s *Store) ToggleWhyPhD(tag string) error {
	next, err := toggle(types.GroupWhyPhD, s.answers.WhyPhD, tag)
	if err != nil {
		return err
	}
	s.answers.WhyPhD = next
	return nil
}

// ToggleWhyIndustry flips an industry motivation tag.
func (s *Store) ToggleWhyIndustry(tag string) error {
	next, err := toggle(types.GroupWhyIndustry, s.answers.WhyIndustry, tag)
	if err != nil {
		return err
	}
	s.answers.WhyIndustry = next
	return nil
}

// Toggle flips tag in one of the bounded groups.
func (s *Store) Toggle(g types.Group, tag string) error {
	switch g {
	case types.GroupWhyPhD:
		return s.ToggleWhyPhD(tag)
	case types.GroupWhyIndustry:
		return s.ToggleWhyIndustry(tag)
	}
	return &InvalidValueError{Field: string(g), Value: tag}
}

func toggle(g types.Group, current []string, tag string) ([]string, error) {
	if !g.Allows(tag) {
		return nil, &InvalidValueError{Field: string(g), Value: tag}
	}
	return selection.ToggleBounded(current, tag, types.MaxReasons)
}

// SetPriorityRank moves tag to rank in the priority list. Ranks outside
// 1..5 remove the tag.
func (s *Store) SetPriorityRank(tag string, rank int) error {
	g := types.GroupPriorities
	if !g.Allows(tag) {
		return &InvalidValueError{Field: string(g), Value: tag}
	}
	s.answers.Priorities = selection.ReorderRanked(s.answers.Priorities, tag, rank, g.Universe())
	return nil
}

// PriorityRank returns the 1-based rank of tag, or 0 when unranked.
func (s *Store) PriorityRank(tag string) int {
	return selection.RankOf(s.answers.Priorities, tag)
}
