// Package ignore provides //ctxmark:ignore directive parsing.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//ctxmark:ignore
//	g := ctxmark.New(...)  // Warning suppressed
//
//	g := ctxmark.New(...)  //ctxmark:ignore  // Also works
//
// # Checker-Specific Ignores
//
//	//ctxmark:ignore release - released by the caller
//	g := ctxmark.New(...)
//
// # Valid Checker Names
//
//	┌─────────┬──────────────────────────────────────────────┐
//	│ Name    │ Description                                  │
//	├─────────┼──────────────────────────────────────────────┤
//	│ mark    │ //ctxmark:mark functions enter their scope   │
//	│ release │ guards are released with defer               │
//	└─────────┴──────────────────────────────────────────────┘
//
// # Unused Ignore Detection
//
// Directives that suppress nothing are reported, so stale ignores do not
// pile up:
//
//	//ctxmark:ignore  // Warning: unused ctxmark:ignore directive
//	normalCode()
package ignore
