// Package funcspec provides function specification parsing and matching.
//
// # Specification Format
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type
//
// Examples:
//
//	example.com/app/loader.Load
//	example.com/app/server.Server.Handle
//
// A segment before the last dot is taken as a receiver type when it starts
// with an uppercase letter.
//
// # Usage
//
// The -require-mark flag takes a comma-separated list, parsed with
// [ParseList]. Declared functions are then matched with [MatchesAny]:
//
//	specs := funcspec.ParseList("example.com/app.Run,example.com/app.Server.Handle")
//	if funcspec.MatchesAny(specs, fn) {
//	    // fn must enter a ctxmark scope
//	}
package funcspec
