// Package ctxmark records a per-goroutine breadcrumb trail of named scopes.
//
// # Overview
//
// A scope is entered by constructing a [Guard] and left by releasing it.
// While the guard is live its [Context] sits on the calling goroutine's
// stack, so any code running inside the scope can ask where it is:
//
//	func load(path string) error {
//	    defer ctxmark.New("load", "loader.go", 12, "example.com/app/loader").Release()
//
//	    log.Println(ctxmark.Chain()) // ">main>load"
//	    ...
//	}
//
// [Here] captures the file, line and package of its caller so only the name
// has to be typed:
//
//	defer ctxmark.Here("load").Release()
//
// # Goroutines
//
// Every goroutine owns an independent stack. A new goroutine starts empty,
// even when spawned from inside a scope, and never observes scopes entered by
// other goroutines. A stack is created on the first push and dropped when its
// last entry is popped.
//
// # Release Discipline
//
// Release must run exactly once, on the goroutine that constructed the
// guard, in reverse order of construction. Deferring it covers every exit
// path: normal return, early return, panic and [runtime.Goexit].
//
// Violations are programming errors and panic with an error wrapping
// [ErrUnbalanced]:
//
//	g := ctxmark.New(...)
//	g.Release()
//	g.Release() // panic: released twice
//
// # Queries
//
//	┌──────────────────┬──────────────────────────────────────────────┐
//	│ Function         │ Result                                       │
//	├──────────────────┼──────────────────────────────────────────────┤
//	│ Stack            │ copy of the stack, outermost first           │
//	│ Depth            │ number of live scopes                        │
//	│ Chain            │ ">a>b>c"                                     │
//	│ ChainWith("/")   │ "/a/b/c"                                     │
//	│ PrintStack       │ one line per entry on the output             │
//	│ PrintChain       │ Chain() on the output                        │
//	│ Wrap             │ error annotated with a snapshot of the stack │
//	└──────────────────┴──────────────────────────────────────────────┘
//
// # Code Generation
//
// The [github.com/mpyw/ctxmark/markcheck] analyzer inserts guards into
// functions annotated with //ctxmark:mark and checks that every guard is
// released with defer. Run it through cmd/ctxmark with -fix to rewrite
// sources.
package ctxmark
