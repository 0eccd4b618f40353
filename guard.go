package ctxmark

import (
	"fmt"
	"runtime"
	"strings"

	"fortio.org/safecast"

	"github.com/mpyw/ctxmark/internal/goid"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard keeps one Context on its goroutine's stack until Release is called.
//
// A Guard must be released exactly once, on the goroutine that created it,
// and after every guard created later on that goroutine has been released.
type Guard struct {
	_ noCopy

	ctx      Context
	gid      uint64
	released bool
}

// New enters a scope on the calling goroutine and returns its guard.
//
//	defer ctxmark.New("load", "loader.go", 12, "example.com/app/loader").Release()
func New(name, file string, line uint32, module string) *Guard {
	g := &Guard{
		ctx: Context{
			Name:   name,
			File:   file,
			Line:   line,
			Module: module,
		},
		gid: goid.Current(),
	}
	push(g)

	return g
}

// Here is like New but takes file, line and package path from its caller.
func Here(name string) *Guard {
	return newAt(name, 2)
}

// newAt enters a scope whose origin is the caller skip frames above newAt.
func newAt(name string, skip int) *Guard {
	var file, module string
	var line uint32

	if pc, f, l, ok := runtime.Caller(skip); ok {
		file = f
		if n, err := safecast.Conv[uint32](l); err == nil {
			line = n
		}
		if fn := runtime.FuncForPC(pc); fn != nil {
			module = packagePath(fn.Name())
		}
	}

	return New(name, file, line, module)
}

// Release leaves the scope entered by New. It panics with ErrUnbalanced
// when called twice, from another goroutine, or before guards created
// after it have been released.
func (g *Guard) Release() {
	if g == nil {
		panic(fmt.Errorf("%w: release of nil guard", ErrUnbalanced))
	}
	if g.released {
		panic(fmt.Errorf("%w: scope %q released twice", ErrUnbalanced, g.ctx.Name))
	}

	pop(g, goid.Current())
	g.released = true
}

// Context returns the context pushed by g.
func (g *Guard) Context() Context {
	return g.ctx
}

// Do runs fn inside a scope named name. The scope is left when fn returns
// or panics.
func Do(name string, fn func() error) error {
	g := newAt(name, 2)
	defer g.Release()

	return fn()
}

// packagePath strips the function part of a symbol name as reported by
// runtime.FuncForPC, e.g. "example.com/app/loader.(*Loader).Load" becomes
// "example.com/app/loader". Dots in the last path element are escaped as
// %2e by the linker.
func packagePath(symbol string) string {
	slash := strings.LastIndexByte(symbol, '/')
	dot := strings.IndexByte(symbol[slash+1:], '.')
	if dot >= 0 {
		symbol = symbol[:slash+1+dot]
	}

	return strings.ReplaceAll(symbol, "%2e", ".")
}
