package voicemail

// Event is a sealed interface representing something that happened on the
// line. The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventSelect carries the top-level bootstrap choice as a single selection,
// not as accumulated digits.
type EventSelect struct {
	Choice int
}

func (EventSelect) event() {}

// EventMailboxNumber carries the mailbox number read during the bootstrap
// handshake.
type EventMailboxNumber struct {
	Number string
}

func (EventMailboxNumber) event() {}

// EventKey represents a single key press: a digit, "#" or "*".
type EventKey struct {
	Key string
}

func (EventKey) event() {}

// EventAudio represents a chunk of captured voice.
type EventAudio struct {
	Chunk string
}

func (EventAudio) event() {}

// EventHangup signals that the caller hung up.
type EventHangup struct{}

func (EventHangup) event() {}

// Choice values offered by the welcome prompt.
const (
	ChoiceLeaveMessage  = 1
	ChoiceAccessMailbox = 2
)

// Interface compliance checks.
var (
	_ Event = EventSelect{}
	_ Event = EventMailboxNumber{}
	_ Event = EventKey{}
	_ Event = EventAudio{}
	_ Event = EventHangup{}
)
