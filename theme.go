package voicemail

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the phone
// simulator matches any color scheme.
type Theme struct {
	Prompt int // Text spoken by the system
	Caller int // Keys and voice from the caller
	Error  int // Error prompts and failures
	State  int // State badge in the status line
	Muted  int // Status bar, placeholders
	Accent int // Mailbox number
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Prompt: 2,
		Caller: 4,
		Error:  1,
		State:  3,
		Muted:  8,
		Accent: 5,
	}
}
