package bubbletea

import "github.com/fwojciec/voicemail"

var _ voicemail.Device = (*Transcript)(nil)

// Transcript is the Device a simulated line speaks through. It queues prompts
// until the Model drains them into its view. The Session and the Model must
// share the same Transcript.
type Transcript struct {
	pending []string
}

// NewTranscript creates an empty Transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Prompt implements voicemail.Device.
func (t *Transcript) Prompt(text string) {
	t.pending = append(t.pending, text)
}

// Drain returns the queued prompts and empties the queue.
func (t *Transcript) Drain() []string {
	out := t.pending
	t.pending = nil
	return out
}
