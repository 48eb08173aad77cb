package voicemail

import "time"

// Message is a captured voice message. It is a value and never changes once
// created.
type Message struct {
	Text       string
	ReceivedAt time.Time
}
