package ir

import (
	"fmt"

	ferrors "github.com/oxur/fermata/core/errors"
)

// Validate checks the invariants the type system cannot express for a score
// built outside the decoder: every Part.ID is declared in the PartList, part
// IDs are unique, and a multi-element union slot is never nil.
//
// It returns the first violation. Part reference failures are
// *errors.UndefinedReferenceError; everything else is *errors.InvalidValueError.
func Validate(s *ScorePartwise) error {
	if s == nil {
		return ferrors.NewInvalidValue("score", "nil", ferrors.Position{})
	}

	declared := make(map[string]bool)
	for i, item := range s.PartList.Items {
		switch it := item.(type) {
		case *ScorePart:
			if it.ID == "" {
				return ferrors.NewInvalidValue(fmt.Sprintf("part-list[%d].id", i), "", ferrors.Position{})
			}
			if declared[it.ID] {
				return ferrors.NewInvalidValue("score-part.id", it.ID, ferrors.Position{})
			}
			declared[it.ID] = true
		case *PartGroup:
			if it.Type == 0 {
				return ferrors.NewInvalidValue(fmt.Sprintf("part-list[%d].type", i), "", ferrors.Position{})
			}
		default:
			return ferrors.NewInvalidValue(fmt.Sprintf("part-list[%d]", i), "nil", ferrors.Position{})
		}
	}

	seen := make(map[string]bool)
	for _, p := range s.Parts {
		if !declared[p.ID] {
			return ferrors.NewUndefinedReference("part", p.ID, ferrors.Position{})
		}
		if seen[p.ID] {
			return ferrors.NewInvalidValue("part.id", p.ID, ferrors.Position{})
		}
		seen[p.ID] = true
		for _, m := range p.Measures {
			if err := validateMeasure(p.ID, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateMeasure(partID string, m *Measure) error {
	path := fmt.Sprintf("part[%s].measure[%s]", partID, m.Number)
	for i, md := range m.Content {
		switch d := md.(type) {
		case *Note:
			if d.Content == nil {
				return ferrors.NewInvalidValue(fmt.Sprintf("%s.content[%d].note", path, i), "nil", ferrors.Position{})
			}
			if full := d.Full(); full == nil || full.Content == nil {
				return ferrors.NewInvalidValue(fmt.Sprintf("%s.content[%d].full-note", path, i), "nil", ferrors.Position{})
			}
		case *Backup, *Forward, *Direction, *Attributes, *Barline:
		default:
			return ferrors.NewInvalidValue(fmt.Sprintf("%s.content[%d]", path, i), "nil", ferrors.Position{})
		}
	}
	return nil
}
