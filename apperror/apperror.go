// Package apperror collects the engine's fatal error kinds (spec.md §7).
// Both are bugs-in-the-engine signals, not normal control flow: callers
// are not expected to recover from them, only to report them.
package apperror

import "fmt"

// LexerStall reports that a lexer iteration failed to advance its
// cursor — the termination invariant of §4.3 was violated.
type LexerStall struct {
	Position int
	Rune     byte
}

func (e *LexerStall) Error() string {
	return fmt.Sprintf("lexer stalled at byte %d (%q): no progress made", e.Position, e.Rune)
}

// UnknownConfig reports that Configure was asked to activate a bundled
// macro pack name that is not registered.
type UnknownConfig struct {
	Name string
}

func (e *UnknownConfig) Error() string {
	return fmt.Sprintf("unknown configuration pack: %q", e.Name)
}
