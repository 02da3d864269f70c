package fermata

import (
	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/sexpr"
)

// CanonicalText is the compact Fermata text of score. Scores that decode
// from equivalent documents have the same canonical text.
func CanonicalText(score *ir.ScorePartwise) (string, error) {
	if score == nil {
		return "", &ferrors.InvalidValueError{Field: "score-partwise", Value: "<nil>"}
	}
	return sexpr.FormatString(ScoreForm(score), sexpr.Options{Compact: true}), nil
}

// Fingerprint hashes the canonical text of score.
func Fingerprint(score *ir.ScorePartwise) (ir.Digest, error) {
	text, err := CanonicalText(score)
	if err != nil {
		return ir.Digest{}, err
	}
	return ir.HashText(text), nil
}
