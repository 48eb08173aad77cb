package voicemail

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const keypadKeys = "0123456789#*"

// Bootstrap runs the call-entry handshake of s against b. It keeps reading
// until the Session leaves the bootstrap states, so an out-of-range choice or
// an unknown mailbox number simply loops back to another read. It returns the
// first error from b, which wraps ErrNoInput when the input is exhausted.
func Bootstrap(ctx context.Context, s *Session, b Bootstrapper) error {
	for s.State().Bootstrapping() {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch s.State() {
		case StateIdle:
			choice, err := b.ReadChoice(ctx)
			if err != nil {
				return fmt.Errorf("read choice: %w", err)
			}
			s.Select(choice)
		case StateAwaitingMailbox:
			number, err := b.ReadMailboxNumber(ctx)
			if err != nil {
				return fmt.Errorf("read mailbox number: %w", err)
			}
			s.SelectMailbox(number)
		}
	}
	return nil
}

// Translate converts one line of simulated keypad input into the event it
// stands for in state. "H" hangs up and "Q" yields ErrQuit in every state.
// During the handshake the line must be an integer choice (Idle) or a numeric
// mailbox number (AwaitingMailbox); otherwise ErrInvalidSelection or
// ErrInvalidMailboxNumber is returned. Past the handshake a single key of
// 0-9, # or * is a key press and anything else is voice.
func Translate(state State, line string) (Event, error) {
	line = strings.TrimSpace(line)
	switch strings.ToUpper(line) {
	case "H":
		return EventHangup{}, nil
	case "Q":
		return nil, ErrQuit
	}
	switch state {
	case StateIdle:
		choice, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", line, ErrInvalidSelection)
		}
		return EventSelect{Choice: choice}, nil
	case StateAwaitingMailbox:
		if !isNumber(line) {
			return nil, fmt.Errorf("%q: %w", line, ErrInvalidMailboxNumber)
		}
		return EventMailboxNumber{Number: line}, nil
	}
	if len(line) == 1 && strings.Contains(keypadKeys, line) {
		return EventKey{Key: line}, nil
	}
	return EventAudio{Chunk: line}, nil
}

// isKeypad reports whether every rune of s is a keypad key. The empty string
// qualifies.
func isKeypad(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return !strings.ContainsRune(keypadKeys, r)
	})
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
