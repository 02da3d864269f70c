package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func barlineAttrs(ev xml.Event) (*ir.Barline, error) {
	a := attrsOf(ev)
	b := &ir.Barline{
		Location:  enum(a, "location", ir.ParseRightLeftMiddle),
		Segno:     a.str("segno"),
		Coda:      a.str("coda"),
		Divisions: a.float("divisions"),
		ID:        a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decoder) barline(ev xml.Event) (*ir.Barline, error) {
	if ev.Kind == xml.EventEmpty {
		return barlineAttrs(ev)
	}
	return d.barlineFromStart(ev)
}

// barlineFromStart reads a barline's children. A start tag closed at once
// decodes like <barline/>.
func (d *decoder) barlineFromStart(start xml.Event) (*ir.Barline, error) {
	b, err := barlineAttrs(start)
	if err != nil {
		return nil, err
	}
	err = d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "bar-style":
			bs := &ir.BarStyleColor{Color: ev.Attr("color")}
			if bs.Value, err = enumText(d, ev, ir.ParseBarStyle); err == nil {
				b.BarStyle = bs
			}
		case "wavy-line":
			b.WavyLine, err = d.wavyLine(ev)
		case "segno":
			sa := attrsOf(ev)
			s := &ir.Segno{PrintStyle: sa.printStyle(), Halign: sa.halign(), Valign: sa.valign(), Smufl: sa.str("smufl"), ID: sa.str("id")}
			b.SegnoMark, err = finishEmpty(d, ev, sa, s)
		case "coda":
			ca := attrsOf(ev)
			c := &ir.Coda{PrintStyle: ca.printStyle(), Halign: ca.halign(), Valign: ca.valign(), Smufl: ca.str("smufl"), ID: ca.str("id")}
			b.CodaMark, err = finishEmpty(d, ev, ca, c)
		case "fermata":
			var f ir.Fermata
			if f, err = d.fermata(ev); err == nil {
				b.Fermatas = append(b.Fermatas, f)
			}
		case "ending":
			b.Ending, err = d.ending(ev)
		case "repeat":
			ra := attrsOf(ev)
			r := &ir.Repeat{
				Direction: requiredEnum(ra, "direction", ir.ParseBackwardForward),
				Times:     ra.integer("times"),
				AfterJump: ra.yesNo("after-jump"),
				Winged:    enum(ra, "winged", ir.ParseWinged),
			}
			b.Repeat, err = finishEmpty(d, ev, ra, r)
		default:
			err = d.skip("barline", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decoder) ending(ev xml.Event) (*ir.Ending, error) {
	a := attrsOf(ev)
	e := &ir.Ending{
		Number:      a.required("number"),
		Type:        requiredEnum(a, "type", ir.ParseStartStopDiscontinue),
		PrintObject: a.yesNo("print-object"),
		PrintStyle:  a.printStyle(),
		EndLength:   a.float("end-length"),
		TextX:       a.float("text-x"),
		TextY:       a.float("text-y"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	s, err := d.text(ev)
	if err != nil {
		return nil, err
	}
	e.Text = s
	return e, nil
}
