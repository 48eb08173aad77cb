// Package config loads voicemail settings from defaults, an optional YAML
// file and VOICEMAIL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/voicemail"
	"github.com/fwojciec/voicemail/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, with dots in keys
// replaced by underscores: VOICEMAIL_STORE_DIR for store.dir.
const EnvPrefix = "VOICEMAIL"

// Config is the full application configuration.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Call    CallConfig    `mapstructure:"call"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig locates mailbox data.
type StoreConfig struct {
	// Dir holds one JSON file per mailbox.
	Dir string `mapstructure:"dir"`
	// Seed is a YAML file imported when Dir holds no mailboxes.
	Seed string `mapstructure:"seed"`
}

// CallConfig controls how a line behaves.
type CallConfig struct {
	// InputTimeout bounds the wait for each line of caller input. Zero waits
	// forever.
	InputTimeout time.Duration `mapstructure:"input_timeout"`
	// RequirePasscode makes "access mailbox" ask for a mailbox number and
	// passcode instead of entering the menu directly.
	RequirePasscode bool `mapstructure:"require_passcode"`
}

// LoggingConfig controls diagnostics.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File, when set, receives logs instead of stderr.
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Dir: filepath.Join(DataDir(), "mailboxes"),
		},
		Call: CallConfig{
			InputTimeout:    0,
			RequirePasscode: false,
		},
		Logging: LoggingConfig{
			Level:  logging.LevelWarn,
			Format: logging.FormatAuto,
		},
	}
}

// SetDefaults registers Default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("store.dir", defaults.Store.Dir)
	v.SetDefault("store.seed", defaults.Store.Seed)

	v.SetDefault("call.input_timeout", defaults.Call.InputTimeout)
	v.SetDefault("call.require_passcode", defaults.Call.RequirePasscode)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// Init prepares v: defaults, environment binding and the config file search
// path. An explicit file is used as given; otherwise config.yaml is looked up
// in ConfigDir and the working directory. A missing config file is not an
// error.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && file == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads the configuration from v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// AccessTransition returns the Session access behavior selected by the call
// settings.
func (c *Config) AccessTransition() voicemail.AccessTransition {
	if c.Call.RequirePasscode {
		return voicemail.AccessWithPasscode
	}
	return voicemail.AccessDirect
}

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap lets errors.Is match voicemail.ErrValidation.
func (e ValidationErrors) Unwrap() error { return voicemail.ErrValidation }

// Validate checks every setting and returns all problems found.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(c.Store.Dir) == "" {
		errs = append(errs, ValidationError{
			Field:   "store.dir",
			Value:   c.Store.Dir,
			Message: "must not be empty",
		})
	}
	if c.Call.InputTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "call.input_timeout",
			Value:   c.Call.InputTimeout,
			Message: "must not be negative",
		})
	}
	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}
	if !slices.Contains(logging.ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidFormats(), ", ")),
		})
	}
	return errs
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "voicemail")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".voicemail"
	}
	return filepath.Join(home, ".config", "voicemail")
}

// DataDir returns the default root for mailbox data.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "voicemail")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".voicemail"
	}
	return filepath.Join(home, ".local", "share", "voicemail")
}
