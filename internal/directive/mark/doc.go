// Package mark provides //ctxmark:mark directive parsing.
//
// # Overview
//
// The mark directive requests a ctxmark scope for a function. It takes the
// place of wrapping the body by hand:
//
//	//ctxmark:mark
//	func loadConfig(path string) error {
//	    defer ctxmark.New("loadConfig", "config.go", 12, "example.com/app").Release()
//	    ...
//	}
//
// # Scope Names
//
// Without an argument the scope is named after the function, with the
// receiver type for methods:
//
//	//ctxmark:mark
//	func (s *Server) Handle() {}  // "Server.Handle"
//
// An argument overrides it, quoted when it contains spaces:
//
//	//ctxmark:mark handle-request
//	//ctxmark:mark "handle request"
//
// # Required Functions
//
// Functions matching the -require-mark flag are treated as marked without a
// directive. See the [funcspec] package for the format.
//
// # Parsing
//
// Use [Build] to find all marked functions in a package:
//
//	targets := mark.Build(pass, required, skipFiles)
package mark
