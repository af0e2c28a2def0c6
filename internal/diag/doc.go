// Package diag defines the diagnostic model shared by the front-end stages.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Warning (recoverable), Error (fatal), Critical (fatal,
//     front-end bug).
//   - Code: compact numeric identifier with a stable ID (LEX1001) and a title
//     (IllegalCharacter). The code range selects the Category, which in turn
//     gives the banner prefix (LexerException, ParserException, ...).
//   - Context: the named scope the finding belongs to. Contexts form a chain
//     rooted at Global.
//   - Span: the offending source range, or source.Void() for location-less
//     findings such as internal invariant violations.
//
// # Flow
//
// Stages never print or exit. Recoverable findings go to a Reporter; a fatal
// one is returned as the stage's error (Diagnostic implements error). Only
// the command layer renders diagnostics (see internal/diagfmt) and decides the
// exit code.
//
// Bag is the default sink: it bounds, sorts and deduplicates diagnostics.
// DedupReporter and MultiReporter compose reporters.
package diag
