package voicemail

// Prompt texts spoken by the Session.
const (
	PromptWelcome           = "To leave a message, press (1), to access your mailbox, press (2)"
	PromptEnterMailbox      = "Enter mailbox number"
	PromptInvalidMailbox    = "Invalid Mailbox number, please enter a valid mailbox number: "
	PromptMailboxNotFound   = "Incorrect mailbox number. Try again!"
	PromptEnterPasscode     = "Please enter the passcode, then press the # key"
	PromptIncorrectPasscode = "Incorrect passcode. Try again!"
	PromptNewPasscode       = "Enter new passcode followed by the # key"
	PromptRecordGreeting    = "Record your greeting, then press the # key"
	PromptNoMessages        = "No messages."

	MailboxMenuText = "Enter 1 to listen to your messages\n" +
		"Enter 2 to change your passcode\n" +
		"Enter 3 to change your greeting"

	MessageMenuText = "Enter 1 to listen to the current message\n" +
		"Enter 2 to save the current message\n" +
		"Enter 3 to delete the current message\n" +
		"Enter 4 to return to the main menu"
)
