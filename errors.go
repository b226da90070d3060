/*
errors.go declares the sentinel errors chego returns. Every exported parse
or validation failure wraps one of these with fmt.Errorf("%w: ...") so
callers can test the failure category with errors.Is while still getting a
human-readable message. Internal invariant violations that indicate a bug
in this package rather than bad input (a move generator producing a move
that doesn't decode, a lookup table indexed out of range) panic instead,
matching the teacher's convention of panicking only on "can't happen"
states.
*/

package chego

import "errors"

var (
	// ErrInvalidPosition is returned when a Position fails [Position.Validate],
	// including from [PositionBuilder.Build]. ParseFEN does not validate the
	// position it parses and never returns it.
	ErrInvalidPosition = errors.New("chego: invalid position")

	// ErrInvalidSquare is returned when a square name is malformed
	// (e.g. "i9").
	ErrInvalidSquare = errors.New("chego: invalid square")

	// ErrInvalidMove is returned when a well-formed move string does not
	// correspond to any legal move in the position it is being applied to.
	// A move string that cannot be parsed gives [ErrInvalidNotation].
	ErrInvalidMove = errors.New("chego: invalid move")

	// ErrInvalidNotation is returned when a FEN, PGN, or other notation
	// string is malformed independent of whether the position it would
	// describe is legal.
	ErrInvalidNotation = errors.New("chego: invalid notation")
)
