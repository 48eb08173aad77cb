package voicemail

import (
	"crypto/subtle"
	"fmt"
	"slices"
	"sync"
)

// DefaultGreeting returns the greeting a mailbox plays until its owner
// records one.
func DefaultGreeting(id string) string {
	return fmt.Sprintf("You have reached mailbox %s. \nPlease leave a message now.", id)
}

// Mailbox is a voicemail inbox. New messages are played first, in arrival
// order; saved messages are kept after them. The current message is the head
// of the new queue, or of the kept queue once no new messages remain.
//
// Mailbox is safe for concurrent use. Every passcode, greeting and queue
// operation holds the mailbox's own lock, so two lines reaching the same
// mailbox never interleave a mutation.
type Mailbox struct {
	id string

	mu       sync.Mutex
	passcode string
	greeting string
	incoming []Message
	kept     []Message
}

// NewMailbox creates an empty mailbox. An empty greeting selects
// DefaultGreeting.
func NewMailbox(id, passcode, greeting string) *Mailbox {
	if greeting == "" {
		greeting = DefaultGreeting(id)
	}
	return &Mailbox{id: id, passcode: passcode, greeting: greeting}
}

// ID returns the mailbox number.
func (m *Mailbox) ID() string { return m.id }

// CheckPasscode reports whether code matches the mailbox passcode.
func (m *Mailbox) CheckPasscode(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return subtle.ConstantTimeCompare([]byte(code), []byte(m.passcode)) == 1
}

// SetPasscode replaces the passcode. No length or format check is applied.
func (m *Mailbox) SetPasscode(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passcode = code
}

// Greeting returns the greeting played to callers.
func (m *Mailbox) Greeting() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.greeting
}

// SetGreeting replaces the greeting.
func (m *Mailbox) SetGreeting(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.greeting = text
}

// AddMessage appends msg to the new-message queue.
func (m *Mailbox) AddMessage(msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incoming = append(m.incoming, msg)
}

// CurrentMessage returns the message under the cursor. ok is false when the
// mailbox holds no messages.
func (m *Mailbox) CurrentMessage() (msg Message, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case len(m.incoming) > 0:
		return m.incoming[0], true
	case len(m.kept) > 0:
		return m.kept[0], true
	default:
		return Message{}, false
	}
}

// SaveCurrentMessage moves the current new message to the end of the kept
// queue, advancing the cursor. It is a no-op once only kept messages remain.
func (m *Mailbox) SaveCurrentMessage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.incoming) == 0 {
		return
	}
	m.kept = append(m.kept, m.incoming[0])
	m.incoming = m.incoming[1:]
}

// RemoveCurrentMessage deletes the current message, advancing the cursor.
func (m *Mailbox) RemoveCurrentMessage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case len(m.incoming) > 0:
		m.incoming = m.incoming[1:]
	case len(m.kept) > 0:
		m.kept = m.kept[1:]
	}
}

// MessageCount returns the number of new and kept messages.
func (m *Mailbox) MessageCount() (incoming, kept int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.incoming), len(m.kept)
}

// MailboxSnapshot is the plain-data form of a Mailbox, used by storage
// adapters and seed files.
type MailboxSnapshot struct {
	ID       string
	Passcode string
	Greeting string
	New      []Message
	Kept     []Message
}

// Snapshot returns a copy of the mailbox contents.
func (m *Mailbox) Snapshot() MailboxSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MailboxSnapshot{
		ID:       m.id,
		Passcode: m.passcode,
		Greeting: m.greeting,
		New:      slices.Clone(m.incoming),
		Kept:     slices.Clone(m.kept),
	}
}

// RestoreMailbox rebuilds a Mailbox from a snapshot. The greeting is taken
// as is, so an owner's empty greeting stays empty.
func RestoreMailbox(s MailboxSnapshot) *Mailbox {
	return &Mailbox{
		id:       s.ID,
		passcode: s.Passcode,
		greeting: s.Greeting,
		incoming: slices.Clone(s.New),
		kept:     slices.Clone(s.Kept),
	}
}
