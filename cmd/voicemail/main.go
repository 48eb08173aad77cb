// Command voicemail simulates a voicemail line.
//
// Usage:
//
//	voicemail call             Run a call over stdin/stdout, one line per key or voice chunk
//	voicemail phone            Run the call in a terminal phone simulator
//	voicemail mailbox list     List mailboxes in the store
//	voicemail mailbox add ID   Create a mailbox
//	voicemail mailbox import F Import mailboxes from a YAML seed file
//	voicemail config show      Print the effective configuration
//
// During a call, "H" hangs up, "Q" quits, a single 0-9, # or * is a key
// press and any other line is voice.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "voicemail: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	return root.ExecuteContext(ctx)
}
