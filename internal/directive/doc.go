// Package directive provides directive parsing for ctxmark.
//
// # Overview
//
//	directive/
//	├── ignore/   # //ctxmark:ignore directive
//	└── mark/     # //ctxmark:mark directive
//
// # Directive Format
//
// All directives follow the format:
//
//	//ctxmark:<directive> [args]
//
// Examples:
//
//	//ctxmark:mark
//	//ctxmark:mark load-config
//	//ctxmark:ignore
//	//ctxmark:ignore release - released by the caller
//
// A trailing "// comment" is allowed after the arguments.
//
// See the [ignore] and [mark] packages for details.
package directive
