package voicemail

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Directory resolves mailbox numbers. FindMailbox returns an error wrapping
// ErrMailboxNotFound when no mailbox has the given ID.
type Directory interface {
	FindMailbox(id string) (*Mailbox, error)
}

// MemoryDirectory is an in-process Directory. It is safe for concurrent use.
type MemoryDirectory struct {
	mu        sync.RWMutex
	mailboxes map[string]*Mailbox
}

var _ Directory = (*MemoryDirectory)(nil)

// NewMemoryDirectory creates a directory holding the given mailboxes. Later
// mailboxes replace earlier ones with the same ID.
func NewMemoryDirectory(mailboxes ...*Mailbox) *MemoryDirectory {
	d := &MemoryDirectory{mailboxes: make(map[string]*Mailbox, len(mailboxes))}
	for _, m := range mailboxes {
		d.mailboxes[m.ID()] = m
	}
	return d
}

// FindMailbox implements Directory.
func (d *MemoryDirectory) FindMailbox(id string) (*Mailbox, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.mailboxes[id]
	if !ok {
		return nil, fmt.Errorf("mailbox %q: %w", id, ErrMailboxNotFound)
	}
	return m, nil
}

// Add registers m. It fails with ErrMailboxExists if the ID is taken.
func (d *MemoryDirectory) Add(m *Mailbox) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.mailboxes[m.ID()]; ok {
		return fmt.Errorf("mailbox %q: %w", m.ID(), ErrMailboxExists)
	}
	d.mailboxes[m.ID()] = m
	return nil
}

// Mailboxes returns every registered mailbox ordered by ID.
func (d *MemoryDirectory) Mailboxes() []*Mailbox {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Mailbox, 0, len(d.mailboxes))
	for _, m := range d.mailboxes {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b *Mailbox) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return out
}
