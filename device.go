package voicemail

import "context"

// Device is the output side of a telephone line. Prompt is fire-and-forget
// and may be called several times while handling one event.
type Device interface {
	Prompt(text string)
}

// DeviceFunc adapts a function to Device.
type DeviceFunc func(text string)

// Prompt calls f(text).
func (f DeviceFunc) Prompt(text string) { f(text) }

// Bootstrapper supplies the two blocking call-entry exchanges of a line that
// has no real keypad: reading the top-level choice and reading a mailbox
// number. Implementations re-prompt on malformed input themselves and return
// an error wrapping ErrNoInput once their input source is exhausted.
type Bootstrapper interface {
	ReadChoice(ctx context.Context) (int, error)
	ReadMailboxNumber(ctx context.Context) (string, error)
}
