package voicemail

import "fmt"

// Validate checks constraints on mailbox data entering the system from
// storage or seed files. Mailbox numbers must be numeric so a keypad can
// reach them. Passcodes may hold any keys an owner can dial, including "*".
func (s MailboxSnapshot) Validate() error {
	if !isNumber(s.ID) {
		return fmt.Errorf("mailbox id must be numeric, got %q: %w", s.ID, ErrValidation)
	}
	if !isKeypad(s.Passcode) {
		return fmt.Errorf("mailbox %s: passcode must contain only keypad keys: %w", s.ID, ErrValidation)
	}
	for i, msg := range s.New {
		if msg.Text == "" {
			return fmt.Errorf("mailbox %s: new message %d is empty: %w", s.ID, i, ErrValidation)
		}
	}
	for i, msg := range s.Kept {
		if msg.Text == "" {
			return fmt.Errorf("mailbox %s: kept message %d is empty: %w", s.ID, i, ErrValidation)
		}
	}
	return nil
}
