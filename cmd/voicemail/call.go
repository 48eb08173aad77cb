package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/voicemail"
	bt "github.com/fwojciec/voicemail/bubbletea"
	"github.com/fwojciec/voicemail/console"
	"github.com/spf13/cobra"
)

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call",
		Short: "Run a call over standard input and output",
		Long: `Run a voicemail line over standard input and output. Each input line
is one event: H hangs up, Q quits, a single 0-9, # or * is a key press and
anything else is voice. The store is saved when the input ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dir, err := a.openStore()
			if err != nil {
				return err
			}
			phone := console.NewPhone(a.in, a.out,
				console.WithTimeout(a.cfg.Call.InputTimeout),
				console.WithLogger(a.logger),
			)
			defer phone.Close()
			session := voicemail.NewSession(phone, dir,
				voicemail.WithLogger(a.logger),
				voicemail.WithAccessTransition(a.cfg.AccessTransition()),
			)

			runErr := console.Run(cmd.Context(), phone, session)
			if err := store.Save(dir); err != nil {
				return fmt.Errorf("save store: %w", err)
			}
			switch {
			case errors.Is(runErr, voicemail.ErrNoInput):
				a.logger.Info("input ended")
				return nil
			case errors.Is(runErr, voicemail.ErrInputTimeout):
				a.logger.Info("line idle, hung up", "timeout", a.cfg.Call.InputTimeout)
				return nil
			}
			return runErr
		},
	}
}

func newPhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "phone",
		Short: "Run a call in a terminal phone simulator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dir, err := a.openStore()
			if err != nil {
				return err
			}
			tr := bt.NewTranscript()
			session := voicemail.NewSession(tr, dir,
				voicemail.WithLogger(a.logger),
				voicemail.WithAccessTransition(a.cfg.AccessTransition()),
			)
			if err := bt.Run(cmd.Context(), bt.New(session, tr, voicemail.DefaultTheme(), bt.WithLogger(a.logger))); err != nil {
				return fmt.Errorf("TUI: %w", err)
			}
			if err := store.Save(dir); err != nil {
				return fmt.Errorf("save store: %w", err)
			}
			return nil
		},
	}
}
