package voicemail

import "fmt"

// State is the position of a Session in the call flow.
type State int

const (
	StateIdle             State = iota // Welcome prompt issued, awaiting a choice.
	StateAwaitingMailbox                // Asked for a mailbox number.
	StateLeavingMessage                 // Capturing a message; passcode digits also accepted.
	StateAwaitingPasscode               // Mailbox resolved for login; awaiting passcode.
	StateMailboxMenu                    // Owner menu.
	StateMessageMenu                    // Browsing messages.
	StateChangingPasscode               // Collecting a new passcode.
	StateChangingGreeting               // Recording a new greeting.
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingMailbox:
		return "AwaitingMailbox"
	case StateLeavingMessage:
		return "LeavingMessage"
	case StateAwaitingPasscode:
		return "AwaitingPasscode"
	case StateMailboxMenu:
		return "MailboxMenu"
	case StateMessageMenu:
		return "MessageMenu"
	case StateChangingPasscode:
		return "ChangingPasscode"
	case StateChangingGreeting:
		return "ChangingGreeting"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// CaptureOrLogin reports whether s accepts passcode digits right after a
// mailbox was resolved.
func (s State) CaptureOrLogin() bool {
	return s == StateLeavingMessage || s == StateAwaitingPasscode
}

// Bootstrapping reports whether s belongs to the call-entry handshake.
func (s State) Bootstrapping() bool {
	return s == StateIdle || s == StateAwaitingMailbox
}
