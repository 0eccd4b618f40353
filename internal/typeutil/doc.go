// Package typeutil provides type checking utilities for the ctxmark analyzer.
//
// # Guard Detection
//
// Use [IsGuardType] to check if a type is the runtime guard:
//
//	if typeutil.IsGuardType(typ) {
//	    // typ is ctxmark.Guard or *ctxmark.Guard
//	}
//
// Any call whose result is a guard enters a scope, whether it is
// ctxmark.New, ctxmark.Here or a wrapper returning the guard:
//
//	func enter(name string) *ctxmark.Guard { return ctxmark.Here(name) }
//
// # Implementation Details
//
// The type checking works by:
//  1. Unwrapping pointer types
//  2. Checking if the type is a named type
//  3. Comparing package path and type name
package typeutil
