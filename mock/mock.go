// Package mock provides test doubles for voicemail interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/voicemail"
)

// Interface compliance checks.
var (
	_ voicemail.Device       = (*Device)(nil)
	_ voicemail.Directory    = (*Directory)(nil)
	_ voicemail.Bootstrapper = (*Bootstrapper)(nil)
)

// Device is a test double for voicemail.Device.
// Set PromptFn before calling Prompt.
type Device struct {
	PromptFn func(text string)
}

// Prompt delegates to PromptFn.
func (d *Device) Prompt(text string) {
	d.PromptFn(text)
}

// Directory is a test double for voicemail.Directory.
// Set FindMailboxFn before calling FindMailbox.
type Directory struct {
	FindMailboxFn func(id string) (*voicemail.Mailbox, error)
}

// FindMailbox delegates to FindMailboxFn.
func (d *Directory) FindMailbox(id string) (*voicemail.Mailbox, error) {
	return d.FindMailboxFn(id)
}

// Bootstrapper is a test double for voicemail.Bootstrapper.
// Set the function fields for the methods you need.
type Bootstrapper struct {
	ReadChoiceFn        func(ctx context.Context) (int, error)
	ReadMailboxNumberFn func(ctx context.Context) (string, error)
}

// ReadChoice delegates to ReadChoiceFn.
func (b *Bootstrapper) ReadChoice(ctx context.Context) (int, error) {
	return b.ReadChoiceFn(ctx)
}

// ReadMailboxNumber delegates to ReadMailboxNumberFn.
func (b *Bootstrapper) ReadMailboxNumber(ctx context.Context) (string, error) {
	return b.ReadMailboxNumberFn(ctx)
}
