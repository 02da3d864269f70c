package musicxml

import (
	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// part checks the part's id against the part list before reading any
// measure, so an orphan part fails without being built.
func (d *decoder) part(start xml.Event) (*ir.Part, error) {
	id, err := start.RequiredAttr("id")
	if err != nil {
		return nil, err
	}
	if d.partList == nil {
		return nil, ferrors.NewUndefinedReference("part", id, start.Pos)
	}
	if _, ok := d.partList.Lookup(id); !ok {
		return nil, ferrors.NewUndefinedReference("part", id, start.Pos)
	}

	p := &ir.Part{ID: id}
	err = d.children(start, func(ev xml.Event) error {
		if ev.Name != "measure" {
			return d.skip("part", ev)
		}
		m, err := d.measure(ev)
		if err != nil {
			return err
		}
		p.Measures = append(p.Measures, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func measureAttrs(ev xml.Event) (*ir.Measure, error) {
	a := attrsOf(ev)
	m := &ir.Measure{
		Number:         a.required("number"),
		Text:           a.str("text"),
		Implicit:       a.yesNo("implicit"),
		NonControlling: a.yesNo("non-controlling"),
		Width:          a.float("width"),
		ID:             a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (d *decoder) measure(ev xml.Event) (*ir.Measure, error) {
	if ev.Kind == xml.EventEmpty {
		return measureFromEmpty(ev)
	}
	return d.measureFromStart(ev)
}

// measureFromEmpty handles <measure .../>, a measure with no content.
func measureFromEmpty(ev xml.Event) (*ir.Measure, error) {
	return measureAttrs(ev)
}

func (d *decoder) measureFromStart(start xml.Event) (*ir.Measure, error) {
	m, err := measureAttrs(start)
	if err != nil {
		return nil, err
	}
	err = d.children(start, func(ev xml.Event) error {
		var md ir.MusicData
		var err error
		switch ev.Name {
		case "note":
			md, err = d.note(ev)
		case "backup":
			md, err = d.backup(ev)
		case "forward":
			md, err = d.forward(ev)
		case "direction":
			var dir *ir.Direction
			if dir, err = d.direction(ev); err == nil && dir == nil {
				return nil
			}
			md = dir
		case "attributes":
			md, err = d.attributes(ev)
		case "barline":
			md, err = d.barline(ev)
		default:
			return d.skip("measure", ev)
		}
		if err != nil {
			return err
		}
		m.Content = append(m.Content, md)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *decoder) backup(start xml.Event) (*ir.Backup, error) {
	var dur *float64
	err := d.children(start, func(ev xml.Event) error {
		if ev.Name != "duration" {
			return d.skip("backup", ev)
		}
		var err error
		dur, err = d.optFloatText(ev)
		return err
	})
	if err != nil {
		return nil, err
	}
	if dur == nil {
		return nil, missing("duration", "backup", start)
	}
	return &ir.Backup{Duration: *dur}, nil
}

func (d *decoder) forward(start xml.Event) (*ir.Forward, error) {
	var dur *float64
	f := &ir.Forward{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "duration":
			dur, err = d.optFloatText(ev)
		case "voice":
			f.Voice, err = d.trimmedText(ev)
		case "staff":
			f.Staff, err = d.optUint8Text(ev)
		default:
			err = d.skip("forward", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if dur == nil {
		return nil, missing("duration", "forward", start)
	}
	f.Duration = *dur
	return f, nil
}
