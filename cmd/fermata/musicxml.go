package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oxur/fermata/core/fermata"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/musicxml"
	"github.com/oxur/fermata/core/xml"
	"github.com/oxur/fermata/internal/archive"
	"github.com/oxur/fermata/internal/logging"
)

// CheckCmd decodes every score in a file.
type CheckCmd struct {
	Path string `arg:"" help:"Score or bundle of scores" type:"existingfile"`
}

func (c *CheckCmd) Run(e *runEnv) error {
	entries, _, err := e.readScores(c.Path)
	if err != nil {
		return &inputError{Name: c.Path, Err: err}
	}

	failed := 0
	for _, entry := range entries {
		start := time.Now()
		score, skipped, err := e.decode(entry)
		if err != nil {
			failed++
			logging.ConversionError(e.ctx, "check", entry.Name, err)
			diagnose(e.stderr, err)
			continue
		}
		logging.Conversion(e.ctx, "check", entry.Name, time.Since(start), "skipped", skipped)

		okColor.Fprint(e.stdout, "ok")
		fmt.Fprintf(e.stdout, " %s: %d parts, %d measures", entry.Name, len(score.Parts), measureCount(score))
		if skipped > 0 {
			fmt.Fprintf(e.stdout, ", %d elements skipped", skipped)
		}
		fmt.Fprintln(e.stdout)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scores failed to decode", failed, len(entries))
	}
	return nil
}

// RoundtripCmd decodes scores and encodes them again.
type RoundtripCmd struct {
	Path   string `arg:"" help:"Score or bundle of scores" type:"existingfile"`
	Out    string `short:"o" help:"Output path; .mxl, .gz, .xz and bundle extensions pick the container" type:"path"`
	Verify bool   `help:"Decode the output again and compare fingerprints"`
}

func (c *RoundtripCmd) Run(e *runEnv) error {
	entries, bundle, err := e.readScores(c.Path)
	if err != nil {
		return &inputError{Name: c.Path, Err: err}
	}
	if bundle && c.Out == "" {
		return errors.New("a bundle of scores needs --out")
	}

	outputs := make([]archive.Entry, 0, len(entries))
	for _, entry := range entries {
		start := time.Now()
		score, _, err := e.decode(entry)
		if err != nil {
			return err
		}
		text, err := musicxml.EncodeToString(score, e.encodeOptions()...)
		if err != nil {
			return &inputError{Name: entry.Name, Err: err}
		}
		if c.Verify {
			if err := e.verify(entry.Name, score, text); err != nil {
				return err
			}
		}
		logging.Conversion(e.ctx, "roundtrip", entry.Name, time.Since(start), "bytes", len(text))

		name := entry.Name
		if bundle {
			name = outputName(name)
		}
		outputs = append(outputs, archive.Entry{Name: name, Data: []byte(text)})
	}

	switch {
	case c.Out == "":
		_, err = e.stdout.Write(outputs[0].Data)
		return err
	case bundle:
		return archive.WriteBundle(c.Out, outputs)
	default:
		return archive.WriteScore(c.Out, outputs[0].Data)
	}
}

// verify decodes the re-encoded text and requires it to print to the same
// canonical form as the original score.
func (e *runEnv) verify(name string, original *ir.ScorePartwise, text string) error {
	want, err := fermata.Fingerprint(original)
	if err != nil {
		return err
	}
	again, _, err := e.decode(archive.Entry{Name: name + " (re-encoded)", Data: []byte(text)})
	if err != nil {
		return err
	}
	got, err := fermata.Fingerprint(again)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%s: round trip changed the score (%s, now %s)", name, want.Short(), got.Short())
	}
	okColor.Fprint(e.stderr, "verified")
	fmt.Fprintf(e.stderr, " %s %s\n", name, want.Short())
	return nil
}

// SexprCmd prints scores in Fermata form.
type SexprCmd struct {
	Path    string `arg:"" help:"Score or bundle of scores" type:"existingfile"`
	Compact bool   `help:"Write each score on one line"`
	Indent  string `help:"Indentation unit of the multi-line form"`
}

func (c *SexprCmd) Run(e *runEnv) error {
	entries, bundle, err := e.readScores(c.Path)
	if err != nil {
		return &inputError{Name: c.Path, Err: err}
	}
	opts := e.sexprOptions()
	if c.Compact {
		opts.Compact = true
	}
	if c.Indent != "" {
		opts.Indent = c.Indent
	}

	for _, entry := range entries {
		start := time.Now()
		score, _, err := e.decode(entry)
		if err != nil {
			return err
		}
		if bundle {
			fmt.Fprintf(e.stdout, "; %s\n", entry.Name)
		}
		if err := fermata.Print(e.stdout, score, opts); err != nil {
			return err
		}
		logging.Conversion(e.ctx, "sexpr", entry.Name, time.Since(start))
	}
	return nil
}

// InspectCmd counts the main structures of scores with XPath queries,
// without decoding them.
type InspectCmd struct {
	Path string `arg:"" help:"Score or bundle of scores" type:"existingfile"`
}

// inspectCounts are printed in order for every score.
var inspectCounts = []struct {
	label string
	expr  string
}{
	{"parts", "/*/part-list/score-part"},
	{"measures", "//measure"},
	{"notes", "//note"},
	{"rests", "//note[rest]"},
	{"chord notes", "//note[chord]"},
	{"directions", "//direction"},
	{"barlines", "//barline"},
}

func (c *InspectCmd) Run(e *runEnv) error {
	entries, _, err := e.readScores(c.Path)
	if err != nil {
		return &inputError{Name: c.Path, Err: err}
	}

	for _, entry := range entries {
		doc, err := xml.Parse(entry.Data)
		if err != nil {
			return &inputError{Name: entry.Name, Err: err}
		}
		root := doc.Root()
		if root == nil {
			return &inputError{Name: entry.Name, Err: errors.New("document has no root element")}
		}
		header := root.Name()
		if v := root.Attr("version"); v != "" {
			header += " " + v
		}
		fmt.Fprintf(e.stdout, "%s (%s)\n", entry.Name, header)

		for _, q := range inspectCounts {
			n, err := doc.Count(q.expr)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "  %-12s %d\n", q.label, n)
		}

		parts, err := doc.XPath("/*/part-list/score-part")
		if err != nil {
			return err
		}
		for _, p := range parts {
			name := ""
			for _, child := range p.Children() {
				if child.Name() == "part-name" {
					name = strings.TrimSpace(child.Text())
					break
				}
			}
			fmt.Fprintf(e.stdout, "  part %s: %s\n", p.Attr("id"), name)
		}
	}
	return nil
}

// ElementsCmd lists the element matrix.
type ElementsCmd struct {
	Skipped bool `help:"List the elements the decoder skips instead of the ones it reads"`
}

func (c *ElementsCmd) Run(e *runEnv) error {
	m := musicxml.Supported()
	if c.Skipped {
		m = musicxml.Skipped()
	}
	fmt.Fprintf(e.stdout, "# %s\n", m.Version)
	for _, parent := range m.Parents() {
		fmt.Fprintf(e.stdout, "%s: %s\n", parent, strings.Join(m.Elements[parent], " "))
	}
	return nil
}
