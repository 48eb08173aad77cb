package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/voicemail/config"
	"github.com/fwojciec/voicemail/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once the root command has loaded
// configuration.
type app struct {
	v      *viper.Viper
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgFile  string
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

// flagKeys binds persistent flags to configuration keys.
var flagKeys = map[string]string{
	"store-dir":  "store.dir",
	"seed":       "store.seed",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"log-file":   "logging.file",
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "voicemail",
		Short: "Voicemail line simulator",
		Long: `voicemail runs a telephone voicemail line. Callers leave messages in a
mailbox; owners listen to, save and delete messages and change their
passcode and greeting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/voicemail/config.yaml)")
	flags.String("store-dir", "", "directory holding one JSON file per mailbox")
	flags.String("seed", "", "YAML seed file imported into an empty store")
	flags.String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-format", "", "log format: auto, text, json")
	flags.String("log-file", "", "append logs to this file instead of stderr")
	if err := bindFlags(a.v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newCallCmd(a),
		newPhoneCmd(a),
		newMailboxCmd(a),
		newConfigCmd(a),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if cfg.Logging.File == "" {
		a.logger = logging.New(a.errOut, cfg.Logging.Level, cfg.Logging.Format)
		return nil
	}
	logger, closeLog, err := logging.Open(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog
	return nil
}

func (a *app) teardown() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}
