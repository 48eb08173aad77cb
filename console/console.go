// Package console runs a voicemail line over plain text streams. Each input
// line is one keypad press, one chunk of voice or a line control, as
// interpreted by voicemail.Translate; prompts are written one per line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/voicemail"
)

var (
	_ voicemail.Device       = (*Phone)(nil)
	_ voicemail.Bootstrapper = (*Phone)(nil)
)

// errHangup reports an "H" line read during the call-entry handshake.
var errHangup = errors.New("caller hung up")

// Option configures a Phone.
type Option func(*Phone)

// WithTimeout bounds the wait for each input line. Zero, the default, waits
// until the input ends or the context is cancelled.
func WithTimeout(d time.Duration) Option {
	return func(p *Phone) {
		p.timeout = d
	}
}

// WithLogger sets the logger used for rejected input.
func WithLogger(l *slog.Logger) Option {
	return func(p *Phone) {
		if l != nil {
			p.logger = l
		}
	}
}

// Phone is a telephone line backed by an input reader and a prompt writer.
// It implements voicemail.Device and voicemail.Bootstrapper.
type Phone struct {
	out     io.Writer
	lines   <-chan string
	done    chan struct{}
	stop    sync.Once
	timeout time.Duration
	logger  *slog.Logger
}

// NewPhone starts reading lines from r in the background. Prompts are written
// to w. Call Close when the line is no longer needed.
func NewPhone(r io.Reader, w io.Writer, opts ...Option) *Phone {
	lines := make(chan string)
	done := make(chan struct{})
	go scanLines(r, lines, done)
	p := &Phone{
		out:    w,
		lines:  lines,
		done:   done,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// scanLines sends the lines of r until r ends or done is closed. A scan
// already blocked on r returns only when r yields or fails.
func scanLines(r io.Reader, lines chan<- string, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
}

// Close stops the background reader. Reads after Close return ErrNoInput.
func (p *Phone) Close() error {
	p.stop.Do(func() { close(p.done) })
	return nil
}

// Prompt implements voicemail.Device.
func (p *Phone) Prompt(text string) {
	fmt.Fprintln(p.out, text)
}

// ReadChoice implements voicemail.Bootstrapper. A line that is not an integer
// repeats the welcome prompt and is read again.
func (p *Phone) ReadChoice(ctx context.Context) (int, error) {
	for {
		evt, err := p.next(ctx, voicemail.StateIdle)
		if errors.Is(err, voicemail.ErrInvalidSelection) {
			p.logger.Debug("rejected choice", "error", err)
			p.Prompt(voicemail.PromptWelcome)
			continue
		}
		if err != nil {
			return 0, err
		}
		return evt.(voicemail.EventSelect).Choice, nil
	}
}

// ReadMailboxNumber implements voicemail.Bootstrapper. A line that is not a
// number prompts for a valid one and is read again.
func (p *Phone) ReadMailboxNumber(ctx context.Context) (string, error) {
	for {
		evt, err := p.next(ctx, voicemail.StateAwaitingMailbox)
		if errors.Is(err, voicemail.ErrInvalidMailboxNumber) {
			p.logger.Debug("rejected mailbox number", "error", err)
			p.Prompt(voicemail.PromptInvalidMailbox)
			continue
		}
		if err != nil {
			return "", err
		}
		return evt.(voicemail.EventMailboxNumber).Number, nil
	}
}

// next reads one line and translates it for state. A hangup line surfaces as
// errHangup so the handshake can unwind to Run.
func (p *Phone) next(ctx context.Context, state voicemail.State) (voicemail.Event, error) {
	line, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	evt, err := voicemail.Translate(state, line)
	if err != nil {
		return nil, err
	}
	if _, ok := evt.(voicemail.EventHangup); ok {
		return nil, errHangup
	}
	return evt, nil
}

func (p *Phone) readLine(ctx context.Context) (string, error) {
	var timeout <-chan time.Time
	if p.timeout > 0 {
		timer := time.NewTimer(p.timeout)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case <-p.done:
		return "", voicemail.ErrNoInput
	default:
	}
	select {
	case <-p.done:
		return "", voicemail.ErrNoInput
	case line, ok := <-p.lines:
		if !ok {
			return "", voicemail.ErrNoInput
		}
		return line, nil
	case <-timeout:
		return "", fmt.Errorf("no input after %s: %w", p.timeout, voicemail.ErrInputTimeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Run drives s from p until the caller quits, the input ends or ctx is
// cancelled. "Q" ends the run cleanly. When the input ends or a read times
// out, the call in progress is hung up, so a pending message is kept, and
// the error is returned.
func Run(ctx context.Context, p *Phone, s *voicemail.Session) error {
	for {
		err := voicemail.Bootstrap(ctx, s, p)
		if err == nil {
			err = p.step(ctx, s)
		}
		switch {
		case err == nil:
		case errors.Is(err, errHangup):
			s.Hangup()
		case errors.Is(err, voicemail.ErrQuit):
			return nil
		case errors.Is(err, voicemail.ErrNoInput), errors.Is(err, voicemail.ErrInputTimeout):
			s.Hangup()
			return err
		default:
			return err
		}
	}
}

// step delivers one post-handshake line to s.
func (p *Phone) step(ctx context.Context, s *voicemail.Session) error {
	line, err := p.readLine(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}
	evt, err := voicemail.Translate(s.State(), line)
	if err != nil {
		return err
	}
	s.Handle(evt)
	return nil
}

