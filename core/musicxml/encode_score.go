package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) scorePartwise(s *ir.ScorePartwise) {
	version := s.Version
	if version == "" {
		version = ir.DefaultVersion
	}
	e.w.Start("score-partwise", xml.Attrs{}.Req("version", version))
	if s.Work != nil {
		e.work(s.Work)
	}
	e.optText("movement-number", s.MovementNumber)
	e.optText("movement-title", s.MovementTitle)
	if s.Identification != nil {
		e.identification(s.Identification)
	}
	if s.Defaults != nil {
		e.defaults(s.Defaults)
	}
	for _, c := range s.Credits {
		e.credit(c)
	}
	e.partList(s.PartList)
	for _, p := range s.Parts {
		e.part(p)
	}
	e.w.End("score-partwise")
}

func (e *encoder) work(w *ir.Work) {
	if w.WorkNumber == "" && w.WorkTitle == "" && w.Opus == nil {
		e.w.Empty("work", nil)
		return
	}
	e.w.Start("work", nil)
	e.optText("work-number", w.WorkNumber)
	e.optText("work-title", w.WorkTitle)
	if w.Opus != nil {
		e.w.Empty("opus", xml.Attrs{}.Req("xlink:href", w.Opus.Href))
	}
	e.w.End("work")
}

func (e *encoder) typedText(name string, tt ir.TypedText) {
	e.text(name, tt.Value, xml.Attrs{}.Str("type", tt.Type))
}

func (e *encoder) identification(id *ir.Identification) {
	e.w.Start("identification", nil)
	for _, c := range id.Creators {
		e.typedText("creator", c)
	}
	for _, r := range id.Rights {
		e.typedText("rights", r)
	}
	if id.Encoding != nil {
		e.encoding(id.Encoding)
	}
	e.optText("source", id.Source)
	for _, r := range id.Relations {
		e.typedText("relation", r)
	}
	if len(id.Miscellaneous) > 0 {
		e.w.Start("miscellaneous", nil)
		for _, f := range id.Miscellaneous {
			e.text("miscellaneous-field", f.Value, xml.Attrs{}.Req("name", f.Name))
		}
		e.w.End("miscellaneous")
	}
	e.w.End("identification")
}

// encoding writes each kind of child as a group. The schema allows any
// interleaving; the IR does not keep one.
func (e *encoder) encoding(enc *ir.Encoding) {
	e.w.Start("encoding", nil)
	for _, d := range enc.Dates {
		e.text("encoding-date", d, nil)
	}
	for _, en := range enc.Encoders {
		e.typedText("encoder", en)
	}
	for _, s := range enc.Software {
		e.text("software", s, nil)
	}
	for _, d := range enc.Descriptions {
		e.text("encoding-description", d, nil)
	}
	for _, s := range enc.Supports {
		e.w.Empty("supports", xml.Attrs{}.
			Req("type", s.Type.String()).
			Req("element", s.Element).
			Str("attribute", s.Attribute).
			Str("value", s.Value))
	}
	e.w.End("encoding")
}

func (e *encoder) defaults(def *ir.Defaults) {
	e.w.Start("defaults", nil)
	if s := def.Scaling; s != nil {
		e.w.Start("scaling", nil)
		e.float("millimeters", s.Millimeters)
		e.float("tenths", s.Tenths)
		e.w.End("scaling")
	}
	if pl := def.PageLayout; pl != nil {
		e.pageLayout(pl)
	}
	if sl := def.SystemLayout; sl != nil {
		e.systemLayout(sl)
	}
	for _, sl := range def.StaffLayouts {
		a := xml.Attrs{}.Uint8("number", sl.Number)
		if sl.StaffDistance == nil {
			e.w.Empty("staff-layout", a)
			continue
		}
		e.w.Start("staff-layout", a)
		e.float("staff-distance", *sl.StaffDistance)
		e.w.End("staff-layout")
	}
	if app := def.Appearance; app != nil {
		e.appearance(app)
	}
	if def.MusicFont != nil {
		e.w.Empty("music-font", font(nil, *def.MusicFont))
	}
	if def.WordFont != nil {
		e.w.Empty("word-font", font(nil, *def.WordFont))
	}
	for _, lf := range def.LyricFonts {
		e.w.Empty("lyric-font", font(xml.Attrs{}.Str("number", lf.Number).Str("name", lf.Name), lf.Font))
	}
	for _, ll := range def.LyricLanguages {
		e.w.Empty("lyric-language", xml.Attrs{}.
			Str("number", ll.Number).
			Str("name", ll.Name).
			Req("xml:lang", ll.Lang))
	}
	e.w.End("defaults")
}

func (e *encoder) pageLayout(pl *ir.PageLayout) {
	e.w.Start("page-layout", nil)
	e.optFloat("page-height", pl.PageHeight)
	e.optFloat("page-width", pl.PageWidth)
	for _, m := range pl.PageMargins {
		e.w.Start("page-margins", xml.Attrs{}.Str("type", m.Type.String()))
		e.float("left-margin", m.Left)
		e.float("right-margin", m.Right)
		e.float("top-margin", m.Top)
		e.float("bottom-margin", m.Bottom)
		e.w.End("page-margins")
	}
	e.w.End("page-layout")
}

func (e *encoder) systemLayout(sl *ir.SystemLayout) {
	e.w.Start("system-layout", nil)
	if m := sl.SystemMargins; m != nil {
		e.w.Start("system-margins", nil)
		e.float("left-margin", m.Left)
		e.float("right-margin", m.Right)
		e.w.End("system-margins")
	}
	e.optFloat("system-distance", sl.SystemDistance)
	e.optFloat("top-system-distance", sl.TopSystemDistance)
	e.w.End("system-layout")
}

func (e *encoder) appearance(app *ir.Appearance) {
	e.w.Start("appearance", nil)
	for _, lw := range app.LineWidths {
		e.text("line-width", xml.FormatFloat(lw.Value), xml.Attrs{}.Req("type", lw.Type))
	}
	for _, ns := range app.NoteSizes {
		e.text("note-size", xml.FormatFloat(ns.Value), xml.Attrs{}.Req("type", ns.Type.String()))
	}
	for _, d := range app.Distances {
		e.text("distance", xml.FormatFloat(d.Value), xml.Attrs{}.Req("type", d.Type))
	}
	e.w.End("appearance")
}

func (e *encoder) credit(c *ir.Credit) {
	e.w.Start("credit", xml.Attrs{}.Int("page", c.Page).Str("id", c.ID))
	for _, t := range c.Types {
		e.text("credit-type", t, nil)
	}
	if img := c.Image; img != nil {
		e.w.Empty("credit-image", e.imageAttrs(img))
	}
	for _, w := range c.Words {
		e.text("credit-words", w.Value, formattedText(nil, w))
	}
	e.w.End("credit")
}

func (e *encoder) imageAttrs(img *ir.Image) xml.Attrs {
	a := xml.Attrs{}.
		Req("source", img.Source).
		Req("type", img.Type).
		Float("height", img.Height).
		Float("width", img.Width)
	return position(a, img.Position).
		Str("halign", img.Halign.String()).
		Str("valign", img.Valign.String()).
		Str("id", img.ID)
}
