package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/voicemail"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// greetingColumnWidth bounds the greeting column of mailbox list.
const greetingColumnWidth = 40

func newMailboxCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailbox",
		Short: "Manage mailboxes in the store",
	}
	cmd.AddCommand(
		newMailboxListCmd(a),
		newMailboxAddCmd(a),
		newMailboxImportCmd(a),
	)
	return cmd
}

func newMailboxListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mailboxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dir, err := a.openStore()
			if err != nil {
				return err
			}
			mailboxes := dir.Mailboxes()
			if len(mailboxes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No mailboxes.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), mailboxTable(mailboxes))
			return nil
		},
	}
}

func mailboxTable(mailboxes []*voicemail.Mailbox) string {
	rows := make([][]string, 0, len(mailboxes))
	for _, m := range mailboxes {
		incoming, kept := m.MessageCount()
		greeting := strings.ReplaceAll(m.Greeting(), "\n", " ")
		rows = append(rows, []string{
			m.ID(),
			strconv.Itoa(incoming),
			strconv.Itoa(kept),
			runewidth.Truncate(greeting, greetingColumnWidth, "…"),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MAILBOX", "NEW", "KEPT", "GREETING").
		Rows(rows...).
		Render()
}

func newMailboxAddCmd(a *app) *cobra.Command {
	var passcode, greeting string
	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Create a mailbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := voicemail.MailboxSnapshot{ID: args[0], Passcode: passcode, Greeting: greeting}
			if err := snap.Validate(); err != nil {
				return err
			}
			store, dir, err := a.openStore()
			if err != nil {
				return err
			}
			m := voicemail.NewMailbox(snap.ID, snap.Passcode, snap.Greeting)
			if err := dir.Add(m); err != nil {
				return err
			}
			if err := store.SaveMailbox(m); err != nil {
				return err
			}
			a.logger.Info("mailbox added", "mailbox", m.ID())
			fmt.Fprintf(cmd.OutOrStdout(), "Added mailbox %s.\n", m.ID())
			return nil
		},
	}
	cmd.Flags().StringVar(&passcode, "passcode", "", "owner passcode (keypad keys 0-9, *)")
	cmd.Flags().StringVar(&greeting, "greeting", "", "greeting played to callers (default greeting if empty)")
	return cmd
}

func newMailboxImportCmd(a *app) *cobra.Command {
	var skipExisting bool
	cmd := &cobra.Command{
		Use:   "import <seed.yaml>",
		Short: "Import mailboxes from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dir, err := a.openStore()
			if err != nil {
				return err
			}
			n, err := importSeed(dir, args[0], skipExisting)
			if err != nil {
				return err
			}
			if err := store.Save(dir); err != nil {
				return fmt.Errorf("save store: %w", err)
			}
			a.logger.Info("seed imported", "seed", args[0], "mailboxes", n)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d mailbox(es).\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "skip mailboxes that already exist instead of failing")
	return cmd
}
