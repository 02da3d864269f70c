package fermata

import (
	"errors"
	"fmt"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/sexpr"
)

// ErrCompile is the sentinel wrapped by every CompileError.
var ErrCompile = errors.New("compile error")

// CompileErrorKind classifies a CompileError.
type CompileErrorKind int

// Compile error kinds.
const (
	// InvalidForm is a form with the wrong shape: not a list, a duplicate
	// or unknown keyword, too many arguments.
	InvalidForm CompileErrorKind = iota + 1
	// UnknownForm is a list whose head names no known form.
	UnknownForm
	// MissingArgument is a required argument or keyword value that is absent.
	MissingArgument
	// InvalidArgument is an argument of the wrong type or out of range.
	InvalidArgument
	// InvalidKey is an unknown tonic or a key outside seven sharps or flats.
	InvalidKey
	// UnknownMode is a mode name that is not one of the church modes.
	UnknownMode
	// InvalidTime is a malformed time signature.
	InvalidTime
	// InvalidClef is an unknown clef name or sign.
	InvalidClef
)

var compileErrorKindNames = map[CompileErrorKind]string{
	InvalidForm:     "invalid form",
	UnknownForm:     "unknown form",
	MissingArgument: "missing argument",
	InvalidArgument: "invalid argument",
	InvalidKey:      "invalid key",
	UnknownMode:     "unknown mode",
	InvalidTime:     "invalid time",
	InvalidClef:     "invalid clef",
}

func (k CompileErrorKind) String() string { return compileErrorKindNames[k] }

// CompileError reports a form that could not be compiled to IR.
type CompileError struct {
	Kind CompileErrorKind
	// Form is the head of the form being compiled, such as "key".
	Form   string
	Detail string
	Pos    ferrors.Position
}

func (e *CompileError) Error() string {
	msg := e.Kind.String()
	if e.Form != "" {
		msg = fmt.Sprintf("%s in (%s)", msg, e.Form)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// Position implements errors.Positioned.
func (e *CompileError) Position() ferrors.Position { return e.Pos }

func compileErr(kind CompileErrorKind, form string, at sexpr.Value, format string, args ...any) *CompileError {
	e := &CompileError{Kind: kind, Form: form, Detail: fmt.Sprintf(format, args...)}
	if at != nil {
		e.Pos = at.Position()
	}
	return e
}
