package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) scorePartwise(start xml.Event) (*ir.ScorePartwise, error) {
	score := &ir.ScorePartwise{Version: start.Attr("version")}
	if score.Version == "" {
		score.Version = ir.DefaultVersion
	}
	sawPartList := false

	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "work":
			score.Work, err = d.work(ev)
		case "movement-number":
			score.MovementNumber, err = d.text(ev)
		case "movement-title":
			score.MovementTitle, err = d.text(ev)
		case "identification":
			score.Identification, err = d.identification(ev)
		case "defaults":
			score.Defaults, err = d.defaults(ev)
		case "credit":
			var c *ir.Credit
			if c, err = d.credit(ev); err == nil {
				score.Credits = append(score.Credits, c)
			}
		case "part-list":
			if score.PartList, err = d.partListElement(ev); err == nil {
				sawPartList = true
				d.partList = &score.PartList
			}
		case "part":
			var p *ir.Part
			if p, err = d.part(ev); err == nil {
				score.Parts = append(score.Parts, p)
			}
		default:
			err = d.skip("score-partwise", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawPartList {
		return nil, missing("part-list", "score-partwise", start)
	}
	return score, nil
}

func (d *decoder) work(start xml.Event) (*ir.Work, error) {
	w := &ir.Work{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "work-number":
			w.WorkNumber, err = d.text(ev)
		case "work-title":
			w.WorkTitle, err = d.text(ev)
		case "opus":
			w.Opus = &ir.Opus{Href: ev.Attr("xlink:href")}
			err = d.ignore(ev)
		default:
			err = d.skip("work", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (d *decoder) typedText(ev xml.Event) (ir.TypedText, error) {
	s, err := d.text(ev)
	return ir.TypedText{Type: ev.Attr("type"), Value: s}, err
}

func (d *decoder) identification(start xml.Event) (*ir.Identification, error) {
	id := &ir.Identification{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		var tt ir.TypedText
		switch ev.Name {
		case "creator":
			if tt, err = d.typedText(ev); err == nil {
				id.Creators = append(id.Creators, tt)
			}
		case "rights":
			if tt, err = d.typedText(ev); err == nil {
				id.Rights = append(id.Rights, tt)
			}
		case "encoding":
			id.Encoding, err = d.encoding(ev)
		case "source":
			id.Source, err = d.text(ev)
		case "relation":
			if tt, err = d.typedText(ev); err == nil {
				id.Relations = append(id.Relations, tt)
			}
		case "miscellaneous":
			err = d.children(ev, func(f xml.Event) error {
				if f.Name != "miscellaneous-field" {
					return d.skip("miscellaneous", f)
				}
				name, err := f.RequiredAttr("name")
				if err != nil {
					return err
				}
				value, err := d.text(f)
				id.Miscellaneous = append(id.Miscellaneous, ir.MiscellaneousField{Name: name, Value: value})
				return err
			})
		default:
			err = d.skip("identification", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (d *decoder) encoding(start xml.Event) (*ir.Encoding, error) {
	enc := &ir.Encoding{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		var s string
		switch ev.Name {
		case "encoding-date":
			if s, err = d.trimmedText(ev); err == nil {
				enc.Dates = append(enc.Dates, s)
			}
		case "encoder":
			var tt ir.TypedText
			if tt, err = d.typedText(ev); err == nil {
				enc.Encoders = append(enc.Encoders, tt)
			}
		case "software":
			if s, err = d.text(ev); err == nil {
				enc.Software = append(enc.Software, s)
			}
		case "encoding-description":
			if s, err = d.text(ev); err == nil {
				enc.Descriptions = append(enc.Descriptions, s)
			}
		case "supports":
			a := attrsOf(ev)
			sup := ir.Supports{
				Type:      requiredEnum(a, "type", ir.ParseYesNo),
				Element:   a.required("element"),
				Attribute: a.str("attribute"),
				Value:     a.str("value"),
			}
			if err = a.Err(); err == nil {
				enc.Supports = append(enc.Supports, sup)
				err = d.ignore(ev)
			}
		default:
			err = d.skip("encoding", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func (d *decoder) defaults(start xml.Event) (*ir.Defaults, error) {
	def := &ir.Defaults{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "scaling":
			def.Scaling, err = d.scaling(ev)
		case "page-layout":
			def.PageLayout, err = d.pageLayout(ev)
		case "system-layout":
			def.SystemLayout, err = d.systemLayout(ev)
		case "staff-layout":
			var sl ir.StaffLayout
			if sl, err = d.staffLayout(ev); err == nil {
				def.StaffLayouts = append(def.StaffLayouts, sl)
			}
		case "appearance":
			def.Appearance, err = d.appearance(ev)
		case "music-font":
			a := attrsOf(ev)
			f := a.font()
			if err = a.Err(); err == nil {
				def.MusicFont = &f
				err = d.ignore(ev)
			}
		case "word-font":
			a := attrsOf(ev)
			f := a.font()
			if err = a.Err(); err == nil {
				def.WordFont = &f
				err = d.ignore(ev)
			}
		case "lyric-font":
			a := attrsOf(ev)
			lf := ir.LyricFont{Number: a.str("number"), Name: a.str("name"), Font: a.font()}
			if err = a.Err(); err == nil {
				def.LyricFonts = append(def.LyricFonts, lf)
				err = d.ignore(ev)
			}
		case "lyric-language":
			a := attrsOf(ev)
			ll := ir.LyricLanguage{Number: a.str("number"), Name: a.str("name"), Lang: a.required("xml:lang")}
			if err = a.Err(); err == nil {
				def.LyricLanguages = append(def.LyricLanguages, ll)
				err = d.ignore(ev)
			}
		default:
			err = d.skip("defaults", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return def, nil
}

func (d *decoder) scaling(start xml.Event) (*ir.Scaling, error) {
	var mm, tenths *float64
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "millimeters":
			mm, err = d.optFloatText(ev)
		case "tenths":
			tenths, err = d.optFloatText(ev)
		default:
			err = d.skip("scaling", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if mm == nil {
		return nil, missing("millimeters", "scaling", start)
	}
	if tenths == nil {
		return nil, missing("tenths", "scaling", start)
	}
	return &ir.Scaling{Millimeters: *mm, Tenths: *tenths}, nil
}

func (d *decoder) pageLayout(start xml.Event) (*ir.PageLayout, error) {
	pl := &ir.PageLayout{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "page-height":
			pl.PageHeight, err = d.optFloatText(ev)
		case "page-width":
			pl.PageWidth, err = d.optFloatText(ev)
		case "page-margins":
			var pm ir.PageMargins
			if pm, err = d.pageMargins(ev); err == nil {
				pl.PageMargins = append(pl.PageMargins, pm)
			}
		default:
			err = d.skip("page-layout", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return pl, nil
}

// margins reads the left/right[/top/bottom] children shared by page-margins
// and system-margins.
func (d *decoder) margins(start xml.Event, names ...string) (map[string]float64, error) {
	got := make(map[string]float64, len(names))
	err := d.children(start, func(ev xml.Event) error {
		for _, n := range names {
			if ev.Name == n {
				f, err := d.floatText(ev)
				got[n] = f
				return err
			}
		}
		return d.skip(start.Name, ev)
	})
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		if _, ok := got[n]; !ok {
			return nil, missing(n, start.Name, start)
		}
	}
	return got, nil
}

func (d *decoder) pageMargins(start xml.Event) (ir.PageMargins, error) {
	typ, err := xml.EnumAttr(start, "type", ir.ParseMarginType)
	if err != nil {
		return ir.PageMargins{}, err
	}
	m, err := d.margins(start, "left-margin", "right-margin", "top-margin", "bottom-margin")
	if err != nil {
		return ir.PageMargins{}, err
	}
	return ir.PageMargins{
		Type:   typ,
		Left:   m["left-margin"],
		Right:  m["right-margin"],
		Top:    m["top-margin"],
		Bottom: m["bottom-margin"],
	}, nil
}

func (d *decoder) systemLayout(start xml.Event) (*ir.SystemLayout, error) {
	sl := &ir.SystemLayout{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "system-margins":
			var m map[string]float64
			if m, err = d.margins(ev, "left-margin", "right-margin"); err == nil {
				sl.SystemMargins = &ir.SystemMargins{Left: m["left-margin"], Right: m["right-margin"]}
			}
		case "system-distance":
			sl.SystemDistance, err = d.optFloatText(ev)
		case "top-system-distance":
			sl.TopSystemDistance, err = d.optFloatText(ev)
		default:
			err = d.skip("system-layout", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

func (d *decoder) staffLayout(start xml.Event) (ir.StaffLayout, error) {
	a := attrsOf(start)
	sl := ir.StaffLayout{Number: a.small("number")}
	if err := a.Err(); err != nil {
		return sl, err
	}
	err := d.children(start, func(ev xml.Event) error {
		if ev.Name != "staff-distance" {
			return d.skip("staff-layout", ev)
		}
		var err error
		sl.StaffDistance, err = d.optFloatText(ev)
		return err
	})
	return sl, err
}

func (d *decoder) appearance(start xml.Event) (*ir.Appearance, error) {
	app := &ir.Appearance{}
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "line-width":
			typ, err := ev.RequiredAttr("type")
			if err != nil {
				return err
			}
			f, err := d.floatText(ev)
			app.LineWidths = append(app.LineWidths, ir.LineWidth{Type: typ, Value: f})
			return err
		case "note-size":
			typ, err := xml.RequiredAttrAs(ev, "type", ir.ParseNoteSizeType)
			if err != nil {
				return err
			}
			f, err := d.floatText(ev)
			app.NoteSizes = append(app.NoteSizes, ir.NoteSize{Type: typ, Value: f})
			return err
		case "distance":
			typ, err := ev.RequiredAttr("type")
			if err != nil {
				return err
			}
			f, err := d.floatText(ev)
			app.Distances = append(app.Distances, ir.Distance{Type: typ, Value: f})
			return err
		}
		return d.skip("appearance", ev)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (d *decoder) credit(start xml.Event) (*ir.Credit, error) {
	a := attrsOf(start)
	c := &ir.Credit{Page: a.integer("page"), ID: a.str("id")}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "credit-type":
			s, err := d.text(ev)
			c.Types = append(c.Types, s)
			return err
		case "credit-words":
			s, err := d.text(ev)
			if err != nil {
				return err
			}
			wa := attrsOf(ev)
			ft := wa.formattedText(s)
			if err := wa.Err(); err != nil {
				return err
			}
			c.Words = append(c.Words, ft)
			return nil
		case "credit-image":
			img, err := d.image(ev)
			c.Image = img
			return err
		}
		return d.skip("credit", ev)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decoder) image(ev xml.Event) (*ir.Image, error) {
	a := attrsOf(ev)
	img := &ir.Image{
		Source:   a.required("source"),
		Type:     a.required("type"),
		Height:   a.float("height"),
		Width:    a.float("width"),
		Position: a.position(),
		Halign:   a.halign(),
		Valign:   enum(a, "valign", ir.ParseValign),
		ID:       a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return img, d.ignore(ev)
}
