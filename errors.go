package voicemail

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates mailbox data failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMailboxNotFound indicates no mailbox has the requested ID.
	ErrMailboxNotFound = errors.New("mailbox not found")

	// ErrMailboxExists indicates a mailbox with the same ID is already registered.
	ErrMailboxExists = errors.New("mailbox already exists")

	// ErrInvalidSelection indicates a top-level choice that is not an integer.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidMailboxNumber indicates a mailbox number that is not numeric.
	ErrInvalidMailboxNumber = errors.New("invalid mailbox number")

	// ErrNoInput indicates the bootstrap input source is exhausted.
	ErrNoInput = errors.New("no input")

	// ErrInputTimeout indicates no input arrived within the configured timeout.
	ErrInputTimeout = errors.New("input timeout")

	// ErrQuit indicates the caller asked to shut the line down.
	ErrQuit = errors.New("quit")
)
