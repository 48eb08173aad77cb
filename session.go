package voicemail

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccessTransition selects where the "access mailbox" choice leads. It is the
// single point at which the call-entry flow decides whether an owner must log
// in before reaching the mailbox menu.
type AccessTransition int

const (
	// AccessDirect enters the mailbox menu immediately, with no mailbox bound
	// and no passcode check.
	AccessDirect AccessTransition = iota
	// AccessWithPasscode asks for a mailbox number and then its passcode.
	AccessWithPasscode
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. If nil or not set, logs are
// discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source used to stamp committed messages.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCallIDs sets the generator for per-call IDs. The default yields UUIDv7
// strings.
func WithCallIDs(next func() string) Option {
	return func(s *Session) {
		if next != nil {
			s.nextCallID = next
		}
	}
}

// WithAccessTransition sets the behavior of the "access mailbox" choice.
func WithAccessTransition(t AccessTransition) Option {
	return func(s *Session) {
		s.access = t
	}
}

// Session is the controller for one telephone line. It interprets events
// against the current state, drives Mailbox side effects and speaks prompts
// through its Device.
//
// A Session is not safe for concurrent use; the line delivers events one at a
// time and each is handled to completion.
type Session struct {
	device     Device
	directory  Directory
	logger     *slog.Logger
	now        func() time.Time
	nextCallID func() string
	access     AccessTransition

	callID    string
	state     State
	target    State
	mailbox   *Mailbox
	recording strings.Builder
	keys      strings.Builder
}

// NewSession creates a Session and starts its first call.
func NewSession(device Device, directory Directory, opts ...Option) *Session {
	s := &Session{
		device:     device,
		directory:  directory,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		nextCallID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Mailbox returns the mailbox bound to the call, or nil.
func (s *Session) Mailbox() *Mailbox { return s.mailbox }

// Recording returns the uncommitted capture.
func (s *Session) Recording() string { return s.recording.String() }

// AccumulatedKeys returns the digits collected toward a passcode.
func (s *Session) AccumulatedKeys() string { return s.keys.String() }

// CallID returns the ID of the current call.
func (s *Session) CallID() string { return s.callID }

// Reset clears every buffer, starts a new call and speaks the welcome prompt.
func (s *Session) Reset() {
	s.callID = s.nextCallID()
	s.state = StateIdle
	s.target = StateIdle
	s.mailbox = nil
	s.recording.Reset()
	s.keys.Reset()
	s.log().Info("call started")
	s.device.Prompt(PromptWelcome)
}

// Select delivers the top-level bootstrap choice.
func (s *Session) Select(choice int) { s.Handle(EventSelect{Choice: choice}) }

// SelectMailbox delivers a mailbox number read during the bootstrap handshake.
func (s *Session) SelectMailbox(number string) { s.Handle(EventMailboxNumber{Number: number}) }

// Dial delivers a key press.
func (s *Session) Dial(key string) { s.Handle(EventKey{Key: key}) }

// Record delivers a chunk of voice.
func (s *Session) Record(chunk string) { s.Handle(EventAudio{Chunk: chunk}) }

// Hangup ends the call.
func (s *Session) Hangup() { s.Handle(EventHangup{}) }

// Handle interprets evt against the current state. Events with no defined
// transition in the current state are ignored: no prompt, no state change.
func (s *Session) Handle(evt Event) {
	if _, ok := evt.(EventHangup); ok {
		s.hangup()
		return
	}
	var handled bool
	switch s.state {
	case StateIdle:
		handled = s.idle(evt)
	case StateAwaitingMailbox:
		handled = s.awaitingMailbox(evt)
	case StateLeavingMessage:
		handled = s.leavingMessage(evt)
	case StateAwaitingPasscode:
		handled = s.awaitingPasscode(evt)
	case StateMailboxMenu:
		handled = s.mailboxMenu(evt)
	case StateMessageMenu:
		handled = s.messageMenu(evt)
	case StateChangingPasscode:
		handled = s.changingPasscode(evt)
	case StateChangingGreeting:
		handled = s.changingGreeting(evt)
	}
	if !handled {
		s.log().Debug("event ignored", "event", eventName(evt))
	}
}

func (s *Session) idle(evt Event) bool {
	e, ok := evt.(EventSelect)
	if !ok {
		return false
	}
	switch e.Choice {
	case ChoiceLeaveMessage:
		s.requestMailbox(StateLeavingMessage)
	case ChoiceAccessMailbox:
		s.enterAccess()
	default:
		s.log().Warn("invalid selection", "choice", e.Choice, "error", ErrInvalidSelection)
		s.device.Prompt(PromptWelcome)
	}
	return true
}

// enterAccess is the bootstrap transition taken when the caller chooses to
// access a mailbox.
func (s *Session) enterAccess() {
	switch s.access {
	case AccessWithPasscode:
		s.requestMailbox(StateAwaitingPasscode)
	default:
		s.log().Warn("mailbox menu entered without login")
		s.enterMailboxMenu()
	}
}

func (s *Session) requestMailbox(target State) {
	s.state = StateAwaitingMailbox
	s.target = target
	s.device.Prompt(PromptEnterMailbox)
}

func (s *Session) awaitingMailbox(evt Event) bool {
	e, ok := evt.(EventMailboxNumber)
	if !ok {
		return false
	}
	m, err := s.directory.FindMailbox(e.Number)
	if err != nil {
		if !errors.Is(err, ErrMailboxNotFound) {
			s.log().Error("find mailbox", "mailbox", e.Number, "error", err)
		} else {
			s.log().Info("mailbox not found", "mailbox", e.Number)
		}
		s.device.Prompt(PromptMailboxNotFound)
		return true
	}
	s.mailbox = m
	s.keys.Reset()
	s.recording.Reset()
	s.state = s.target
	s.log().Info("mailbox selected")
	if s.state == StateAwaitingPasscode {
		s.device.Prompt(PromptEnterPasscode)
	} else {
		s.device.Prompt(m.Greeting())
	}
	return true
}

func (s *Session) leavingMessage(evt Event) bool {
	switch e := evt.(type) {
	case EventAudio:
		s.recording.WriteString(e.Chunk)
		return true
	case EventKey:
		if e.Key != "#" && s.keys.Len() == 0 {
			s.device.Prompt(PromptEnterPasscode)
		}
		s.passcodeKey(e.Key)
		return true
	}
	return false
}

func (s *Session) awaitingPasscode(evt Event) bool {
	e, ok := evt.(EventKey)
	if !ok {
		return false
	}
	s.passcodeKey(e.Key)
	return true
}

// passcodeKey accumulates login digits and checks them on "#".
func (s *Session) passcodeKey(key string) {
	if key != "#" {
		s.keys.WriteString(key)
		return
	}
	entered := s.keys.String()
	s.keys.Reset()
	if !s.mailbox.CheckPasscode(entered) {
		s.log().Warn("passcode mismatch")
		s.device.Prompt(PromptIncorrectPasscode)
		return
	}
	s.recording.Reset()
	s.log().Info("owner logged in")
	s.enterMailboxMenu()
}

func (s *Session) enterMailboxMenu() {
	s.state = StateMailboxMenu
	s.device.Prompt(MailboxMenuText)
}

func (s *Session) mailboxMenu(evt Event) bool {
	e, ok := evt.(EventKey)
	if !ok {
		return false
	}
	switch e.Key {
	case "1":
		s.state = StateMessageMenu
		s.device.Prompt(MessageMenuText)
	case "2":
		s.state = StateChangingPasscode
		s.device.Prompt(PromptNewPasscode)
	case "3":
		s.state = StateChangingGreeting
		s.device.Prompt(PromptRecordGreeting)
	default:
		return false
	}
	return true
}

func (s *Session) messageMenu(evt Event) bool {
	e, ok := evt.(EventKey)
	if !ok {
		return false
	}
	switch e.Key {
	case "1":
		text := PromptNoMessages
		if s.mailbox != nil {
			if msg, ok := s.mailbox.CurrentMessage(); ok {
				text = msg.Text
			}
		}
		s.device.Prompt(text + "\n" + MessageMenuText)
	case "2":
		if s.mailbox != nil {
			s.mailbox.SaveCurrentMessage()
		}
		s.device.Prompt(MessageMenuText)
	case "3":
		if s.mailbox != nil {
			s.mailbox.RemoveCurrentMessage()
			s.log().Info("message deleted")
		}
		s.device.Prompt(MessageMenuText)
	case "4":
		s.enterMailboxMenu()
	default:
		return false
	}
	return true
}

func (s *Session) changingPasscode(evt Event) bool {
	e, ok := evt.(EventKey)
	if !ok {
		return false
	}
	if e.Key != "#" {
		s.keys.WriteString(e.Key)
		return true
	}
	code := s.keys.String()
	s.keys.Reset()
	if s.mailbox != nil {
		s.mailbox.SetPasscode(code)
		s.log().Info("passcode changed")
	} else {
		s.log().Warn("passcode change discarded: no mailbox bound")
	}
	s.enterMailboxMenu()
	return true
}

func (s *Session) changingGreeting(evt Event) bool {
	switch e := evt.(type) {
	case EventAudio:
		s.recording.WriteString(e.Chunk)
		return true
	case EventKey:
		if e.Key != "#" {
			return false
		}
		greeting := s.recording.String()
		s.recording.Reset()
		if s.mailbox != nil {
			s.mailbox.SetGreeting(greeting)
			s.log().Info("greeting changed")
		} else {
			s.log().Warn("greeting change discarded: no mailbox bound")
		}
		s.enterMailboxMenu()
		return true
	}
	return false
}

func (s *Session) hangup() {
	if s.state == StateLeavingMessage && s.recording.Len() > 0 {
		s.mailbox.AddMessage(Message{Text: s.recording.String(), ReceivedAt: s.now()})
		s.log().Info("message left", "length", s.recording.Len())
		s.recording.Reset()
	}
	s.log().Info("call ended")
	s.Reset()
}

func (s *Session) log() *slog.Logger {
	l := s.logger.With("call_id", s.callID, "state", s.state.String())
	if s.mailbox != nil {
		l = l.With("mailbox", s.mailbox.ID())
	}
	return l
}

func eventName(evt Event) string {
	switch evt.(type) {
	case EventSelect:
		return "select"
	case EventMailboxNumber:
		return "mailbox_number"
	case EventKey:
		return "key"
	case EventAudio:
		return "audio"
	case EventHangup:
		return "hangup"
	default:
		return "unknown"
	}
}
