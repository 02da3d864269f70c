// Command fermata reads, checks and converts MusicXML scores and compiles
// Fermata attribute forms.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/musicxml"
	"github.com/oxur/fermata/core/sexpr"
	"github.com/oxur/fermata/internal/archive"
	"github.com/oxur/fermata/internal/config"
	"github.com/oxur/fermata/internal/logging"
	"github.com/oxur/fermata/internal/validation"
)

const version = "0.4.0"

// Globals are the flags accepted by every command.
type Globals struct {
	Config    string `name:"config" short:"c" help:"Settings file (default: nearest fermata.toml)" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" help:"Log format: text or json"`
}

// CLI defines the command-line interface for fermata.
type CLI struct {
	Globals

	MusicXML MusicXMLGroup `cmd:"" name:"musicxml" help:"MusicXML operations (check, roundtrip, sexpr, inspect)"`
	Compile  CompileCmd    `cmd:"" help:"Compile Fermata attribute forms"`
	Version  VersionCmd    `cmd:"" help:"Print version information"`
}

// MusicXMLGroup contains the commands that read scores.
type MusicXMLGroup struct {
	Check     CheckCmd     `cmd:"" help:"Decode scores and report the first error in each"`
	Roundtrip RoundtripCmd `cmd:"" help:"Decode and re-encode scores"`
	Sexpr     SexprCmd     `cmd:"" help:"Print scores in Fermata form"`
	Inspect   InspectCmd   `cmd:"" help:"Summarize the XML structure of scores"`
	Elements  ElementsCmd  `cmd:"" help:"List the elements the decoder reads or skips"`
}

var (
	errorColor = color.New(color.FgRed, color.Bold)
	okColor    = color.New(color.FgGreen, color.Bold)
	locColor   = color.New(color.FgCyan)
)

// runEnv is bound into every command's Run method.
type runEnv struct {
	ctx    context.Context
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

// setup loads the settings file, applies flag overrides and starts the
// logger.
func (g *Globals) setup(stdout, stderr io.Writer) (*runEnv, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, ferrors.Wrap(err, "load settings")
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, ferrors.Wrap(err, "log settings")
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, ferrors.Wrap(err, "log settings")
	}
	logging.InitLoggerTo(stderr, level, format)

	ctx := logging.WithRunID(context.Background(), logging.NewRunID())
	return &runEnv{ctx: ctx, cfg: cfg, stdout: stdout, stderr: stderr}, nil
}

func (e *runEnv) limit() int64 {
	return e.cfg.MusicXML.MaxInputBytes
}

func (e *runEnv) encodeOptions() []musicxml.EncodeOption {
	return []musicxml.EncodeOption{
		musicxml.WithIndent(e.cfg.MusicXML.Indent),
		musicxml.WithDeclaration(e.cfg.MusicXML.Declaration),
		musicxml.WithDoctype(e.cfg.MusicXML.Doctype),
	}
}

func (e *runEnv) sexprOptions() sexpr.Options {
	return sexpr.Options{Compact: e.cfg.Sexpr.Compact, Indent: e.cfg.Sexpr.Indent}
}

// readScores returns the single score at p, or every score when p is a
// bundle.
func (e *runEnv) readScores(p string) ([]archive.Entry, bool, error) {
	kind, err := archive.Detect(p)
	if err != nil {
		return nil, false, ferrors.Wrapf(err, "detect %s", p)
	}
	if kind == validation.FileTypeTarGZ || kind == validation.FileTypeTarXZ {
		entries, err := archive.ReadBundle(p, e.limit())
		if err != nil {
			return nil, true, err
		}
		if len(entries) == 0 {
			return nil, true, fmt.Errorf("%s holds no MusicXML scores", p)
		}
		return entries, true, nil
	}
	data, err := archive.ReadScore(p, e.limit())
	if err != nil {
		return nil, false, err
	}
	return []archive.Entry{{Name: p, Data: data}}, false, nil
}

// decode parses one score and counts the elements the decoder skipped.
func (e *runEnv) decode(entry archive.Entry) (*ir.ScorePartwise, int, error) {
	skipped := 0
	handler := func(parent, element string, pos ferrors.Position) {
		skipped++
		if e.cfg.MusicXML.ReportSkipped {
			logging.SkippedElement(e.ctx, parent, element, pos.String())
		}
	}
	score, err := musicxml.ParseScoreBytes(entry.Data, musicxml.WithSkipHandler(handler))
	if err != nil {
		return nil, skipped, &inputError{Name: entry.Name, Err: err}
	}
	return score, skipped, nil
}

// inputError ties a failure to the file it came from.
type inputError struct {
	Name string
	Err  error
}

func (e *inputError) Error() string { return e.Err.Error() }
func (e *inputError) Unwrap() error { return e.Err }

// diagnose writes err to w, followed by the file and position it points
// at when known.
func diagnose(w io.Writer, err error) {
	errorColor.Fprint(w, "error")
	fmt.Fprintf(w, ": %v\n", err)

	var in *inputError
	if !errors.As(err, &in) {
		return
	}
	pos, ok := ferrors.PositionOf(err)
	switch {
	case !ok || !pos.IsValid():
		locColor.Fprintf(w, "  --> %s\n", in.Name)
	case pos.Line == 0:
		locColor.Fprintf(w, "  --> %s (%s)\n", in.Name, pos)
	default:
		locColor.Fprintf(w, "  --> %s:%s\n", in.Name, pos)
	}
}

// outputName is the name a score read from a bundle entry takes in an
// output bundle.
func outputName(name string) string {
	dir := path.Dir(name)
	base := archive.ScoreName(name) + ".musicxml"
	if dir == "." {
		return base
	}
	return path.Join(dir, base)
}

func measureCount(score *ir.ScorePartwise) int {
	n := 0
	for _, p := range score.Parts {
		n += len(p.Measures)
	}
	return n
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(e *runEnv) error {
	fmt.Fprintf(e.stdout, "fermata version %s (elements %s)\n", version, musicxml.MatrixVersion)
	return nil
}

// run parses args and executes the selected command, returning the process
// exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("fermata"),
		kong.Description("Fermata - MusicXML reader, writer and attribute compiler"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		diagnose(stderr, err)
		return 1
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		diagnose(stderr, err)
		return 2
	}

	env, err := cli.Globals.setup(stdout, stderr)
	if err != nil {
		diagnose(stderr, err)
		return 1
	}
	if err := ctx.Run(env); err != nil {
		logging.DebugContext(env.ctx, "command failed", "command", strings.TrimSpace(ctx.Command()), "error", err)
		diagnose(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
