package main

import (
	"os"
	"time"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/fermata"
	"github.com/oxur/fermata/core/musicxml"
	"github.com/oxur/fermata/core/sexpr"
	"github.com/oxur/fermata/internal/logging"
	"github.com/oxur/fermata/internal/validation"
)

// CompileCmd compiles the key, time, clef and attributes forms in a Fermata
// source file.
type CompileCmd struct {
	Path    string `arg:"" help:"Fermata source file" type:"existingfile"`
	XML     bool   `name:"xml" help:"Print MusicXML <attributes> elements instead of Fermata forms"`
	Compact bool   `help:"Write each form on one line"`
}

func (c *CompileCmd) Run(e *runEnv) error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return ferrors.Wrap(err, "invalid input path")
	}
	f, err := os.Open(c.Path)
	if err != nil {
		return ferrors.Wrap(err, "open source")
	}
	defer f.Close()
	src, err := validation.ReadAllLimited(f, e.limit())
	if err != nil {
		return &inputError{Name: c.Path, Err: err}
	}

	start := time.Now()
	compiled, err := fermata.CompileString(c.Path, string(src))
	if err != nil {
		logging.ConversionError(e.ctx, "compile", c.Path, err)
		return &inputError{Name: c.Path, Err: err}
	}
	logging.Conversion(e.ctx, "compile", c.Path, time.Since(start), "forms", len(compiled))

	opts := e.sexprOptions()
	if c.Compact {
		opts.Compact = true
	}
	for _, at := range compiled {
		if c.XML {
			err = musicxml.EncodeAttributes(e.stdout, at, musicxml.WithIndent(e.cfg.MusicXML.Indent))
		} else {
			err = sexpr.Format(e.stdout, fermata.Form(at), opts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
