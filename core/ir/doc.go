// Package ir provides the Intermediate Representation (IR) for lossless music
// notation conversion.
//
// The IR is the single hub between surface syntaxes: MusicXML is decoded into
// it and encoded from it (package musicxml), and the Fermata S-expression form
// is printed from it and compiled into it (package fermata). There is no direct
// XML to S-expression path.
//
// # Core Types
//
// The IR mirrors the partwise MusicXML document shape:
//
//   - ScorePartwise: the root, with header metadata, a PartList and Parts
//   - PartList: ordered ScorePart and PartGroup entries
//   - Part: a part ID and its Measures
//   - Measure: an ordered sequence of MusicData (Note, Backup, Forward,
//     Direction, Attributes, Barline)
//
// The order of a measure's MusicData encodes the time cursor: Backup and
// Forward move an implicit position used to interleave voices, so the
// sequence is preserved exactly.
//
// # Optional Values
//
// An absent XML attribute or element maps to an absent IR field:
//
//   - enumerations use their zero value (String returns "")
//   - numbers are pointers
//   - free text is the empty string
//
// Defaults are applied only where MusicXML itself defines one for the element.
//
// # Tagged Unions
//
// Choice groups are interfaces with an unexported marker method, so only the
// variants declared here satisfy them. A type switch over a union is expected
// to be exhaustive.
//
// # Vocabularies
//
// Every controlled value (bar styles, accidentals, note types, placements, ...)
// has one table shared by every codec. Vocabularies lists them so tests can
// check that each token parses back to its value.
//
// # References
//
// The only cross-reference in the IR is the equality between Part.ID and the
// ID of a ScorePart in the PartList. Validate checks it for trees built by hand.
package ir
