// Package yaml reads mailbox seed files: hand-written YAML that provisions
// mailboxes, with optional greetings and messages, into a store.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/voicemail"
	"gopkg.in/yaml.v3"
)

// SeedVersion is the only seed file format understood.
const SeedVersion = "1"

// SeedFile is the top-level structure of a seed file.
//
//	version: "1"
//	mailboxes:
//	  - id: "101"
//	    passcode: "1234"
//	    greeting: "You have reached the front desk."
//	    messages:
//	      - text: "Call me back"
//	        received_at: 2026-10-19T09:30:00Z
type SeedFile struct {
	Version   string        `yaml:"version"`
	Mailboxes []SeedMailbox `yaml:"mailboxes"`
}

// SeedMailbox describes one mailbox. An empty greeting selects the default.
type SeedMailbox struct {
	ID       string        `yaml:"id"`
	Passcode string        `yaml:"passcode"`
	Greeting string        `yaml:"greeting,omitempty"`
	Messages []SeedMessage `yaml:"messages,omitempty"`
	Kept     []SeedMessage `yaml:"kept,omitempty"`
}

// SeedMessage is a message waiting in a seeded mailbox.
type SeedMessage struct {
	Text       string    `yaml:"text"`
	ReceivedAt time.Time `yaml:"received_at,omitempty"`
}

// LoadSeed reads and validates the seed file at path.
func LoadSeed(path string) ([]voicemail.MailboxSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return DecodeSeed(f)
}

// DecodeSeed reads and validates a seed document from r. Unknown fields and
// duplicate mailbox IDs are rejected.
func DecodeSeed(r io.Reader) ([]voicemail.MailboxSnapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var file SeedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty seed file: %w", voicemail.ErrValidation)
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if file.Version != SeedVersion {
		return nil, fmt.Errorf("unsupported seed version %q: %w", file.Version, voicemail.ErrValidation)
	}

	seen := make(map[string]bool, len(file.Mailboxes))
	out := make([]voicemail.MailboxSnapshot, 0, len(file.Mailboxes))
	for _, m := range file.Mailboxes {
		snap := m.snapshot()
		if err := snap.Validate(); err != nil {
			return nil, err
		}
		if seen[snap.ID] {
			return nil, fmt.Errorf("mailbox %q: %w", snap.ID, voicemail.ErrMailboxExists)
		}
		seen[snap.ID] = true
		out = append(out, snap)
	}
	return out, nil
}

// EncodeSeed writes snapshots as a seed document, the inverse of DecodeSeed.
func EncodeSeed(w io.Writer, snaps []voicemail.MailboxSnapshot) error {
	file := SeedFile{Version: SeedVersion, Mailboxes: make([]SeedMailbox, len(snaps))}
	for i, s := range snaps {
		file.Mailboxes[i] = SeedMailbox{
			ID:       s.ID,
			Passcode: s.Passcode,
			Greeting: s.Greeting,
			Messages: seedMessages(s.New),
			Kept:     seedMessages(s.Kept),
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return enc.Close()
}

func (m SeedMailbox) snapshot() voicemail.MailboxSnapshot {
	greeting := m.Greeting
	if greeting == "" {
		greeting = voicemail.DefaultGreeting(m.ID)
	}
	return voicemail.MailboxSnapshot{
		ID:       m.ID,
		Passcode: m.Passcode,
		Greeting: greeting,
		New:      messages(m.Messages),
		Kept:     messages(m.Kept),
	}
}

func messages(in []SeedMessage) []voicemail.Message {
	if len(in) == 0 {
		return nil
	}
	out := make([]voicemail.Message, len(in))
	for i, m := range in {
		out[i] = voicemail.Message{Text: m.Text, ReceivedAt: m.ReceivedAt}
	}
	return out
}

func seedMessages(in []voicemail.Message) []SeedMessage {
	if len(in) == 0 {
		return nil
	}
	out := make([]SeedMessage, len(in))
	for i, m := range in {
		out[i] = SeedMessage{Text: m.Text, ReceivedAt: m.ReceivedAt}
	}
	return out
}
