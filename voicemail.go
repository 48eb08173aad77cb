// Package voicemail implements the call-handling logic of a voicemail
// system: a per-call Session turns key presses, voice and hangups into
// mailbox operations and spoken prompts.
//
// Subpackages adapt the domain to its dependencies: json persists mailboxes,
// yaml imports seed files, console and bubbletea simulate a telephone, config
// and logging carry the ambient setup, and mock provides test doubles.
package voicemail
