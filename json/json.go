// Package json persists voicemail mailboxes as JSON files, one file per
// mailbox, in a versioned envelope.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/voicemail"
)

// envelope is the v1 wire format for a persisted mailbox.
type envelope struct {
	Version      int          `json:"version"`
	ID           string       `json:"id"`
	Passcode     string       `json:"passcode"`
	Greeting     string       `json:"greeting"`
	NewMessages  []messageDTO `json:"new_messages"`
	KeptMessages []messageDTO `json:"kept_messages"`
}

// messageDTO is the JSON representation of a Message.
type messageDTO struct {
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

// MarshalMailbox serializes a mailbox snapshot to JSON in v1 envelope format.
func MarshalMailbox(s voicemail.MailboxSnapshot) ([]byte, error) {
	env := envelope{
		Version:      1,
		ID:           s.ID,
		Passcode:     s.Passcode,
		Greeting:     s.Greeting,
		NewMessages:  marshalMessages(s.New),
		KeptMessages: marshalMessages(s.Kept),
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalMailbox deserializes and validates a mailbox snapshot from JSON in
// v1 envelope format.
func UnmarshalMailbox(data []byte) (voicemail.MailboxSnapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return voicemail.MailboxSnapshot{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return voicemail.MailboxSnapshot{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	s := voicemail.MailboxSnapshot{
		ID:       env.ID,
		Passcode: env.Passcode,
		Greeting: env.Greeting,
		New:      unmarshalMessages(env.NewMessages),
		Kept:     unmarshalMessages(env.KeptMessages),
	}
	if err := s.Validate(); err != nil {
		return voicemail.MailboxSnapshot{}, err
	}
	return s, nil
}

// Save writes a mailbox snapshot to a JSON file, creating parent directories
// as needed. The file is replaced atomically.
func Save(path string, s voicemail.MailboxSnapshot) error {
	data, err := MarshalMailbox(s)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a mailbox snapshot from a JSON file.
func Load(path string) (voicemail.MailboxSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return voicemail.MailboxSnapshot{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalMailbox(data)
}

func marshalMessages(msgs []voicemail.Message) []messageDTO {
	out := make([]messageDTO, len(msgs))
	for i, m := range msgs {
		out[i] = messageDTO{Text: m.Text, ReceivedAt: m.ReceivedAt}
	}
	return out
}

func unmarshalMessages(dtos []messageDTO) []voicemail.Message {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]voicemail.Message, len(dtos))
	for i, d := range dtos {
		out[i] = voicemail.Message{Text: d.Text, ReceivedAt: d.ReceivedAt}
	}
	return out
}
