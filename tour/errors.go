// Package tour - sentinel errors.
//
// Every failure to turn a stored solution into a usable tour matches ErrDecode
// and, in addition, exactly one of the specific sentinels below:
//
//	if errors.Is(err, tour.ErrDecode) { /* any decoding failure */ }
//	if errors.Is(err, tour.ErrUnknownNode) { /* id outside the node set */ }
package tour

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is the class of every solution decoding failure.
	ErrDecode = errors.New("tour: cannot decode solution")

	// ErrEmptyTour signals a solution without any node.
	ErrEmptyTour = errors.New("tour: empty solution")

	// ErrInvalidToken signals a character or field that is not a
	// non-negative decimal node identifier.
	ErrInvalidToken = errors.New("tour: invalid node identifier")

	// ErrUnknownNode signals an identifier absent from the node set.
	ErrUnknownNode = errors.New("tour: node not in node set")

	// ErrDuplicateNode signals an identifier visited more than once.
	ErrDuplicateNode = errors.New("tour: node visited twice")

	// ErrLegacyEncoding signals a one-digit-per-character solution used with a
	// node set whose identifiers do not all fit in one digit.
	ErrLegacyEncoding = errors.New("tour: digit string cannot address more than 10 nodes")
)

// DecodeError describes where a solution failed to decode.
type DecodeError struct {
	// Kind is one of ErrEmptyTour, ErrInvalidToken, ErrUnknownNode,
	// ErrDuplicateNode or ErrLegacyEncoding.
	Kind error

	// Pos is the 0-based position of the offending element, -1 if none.
	Pos int

	// Token is the offending input as written.
	Token string
}

func (e *DecodeError) Error() string {
	if e.Pos < 0 {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %q at position %d", e.Kind, e.Token, e.Pos)
}

// Unwrap exposes both ErrDecode and the specific Kind to errors.Is.
func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Kind} }

func decodeErr(kind error, pos int, token string) error {
	return &DecodeError{Kind: kind, Pos: pos, Token: token}
}
