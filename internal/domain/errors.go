package domain

import "errors"

// Kinds. Every roster error unwraps to exactly one of them.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

var (
	ErrActivityNotFound    = &Error{Kind: ErrNotFound, Msg: "activity not found"}
	ErrParticipantNotFound = &Error{Kind: ErrNotFound, Msg: "participant not found"}
	ErrAlreadySignedUp     = &Error{Kind: ErrConflict, Msg: "already signed up"}
)

// Error is a roster precondition failure.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }
