// Package checkers contains the ctxmark checkers.
//
// # Checker Overview
//
//	┌──────────┬────────────────────────────────────────────────────────┐
//	│ Checker  │ Reports                                                │
//	├──────────┼────────────────────────────────────────────────────────┤
//	│ mark     │ //ctxmark:mark functions not starting with a guard     │
//	│ release  │ guards not released with defer                         │
//	└──────────┴────────────────────────────────────────────────────────┘
//
// # Mark
//
// A marked function must enter its scope before anything else:
//
//	//ctxmark:mark
//	func load() error {   // <- Warning: marked function "load" does not enter a ctxmark scope
//	    return read()
//	}
//
// The diagnostic carries a fix producing
//
//	//ctxmark:mark
//	func load() error {
//	    defer ctxmark.New("load", "load.go", 4, "example.com/app").Release()
//	    return read()
//	}
//
// The line literal is the line the guard ends up on once every fix in the
// file is applied, including the inserted import.
//
// # Release
//
// Every call returning a guard must be released by defer, or handed to the
// caller:
//
//	g := ctxmark.Here("load")   // <- Warning: ctxmark guard from Here() must be released with defer
//	g.Release()
//
//	g := ctxmark.Here("load")   // OK
//	defer g.Release()
//
//	return ctxmark.Here(name)   // OK, the caller releases it
package checkers
