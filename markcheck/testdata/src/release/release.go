package release

import (
	"errors"

	"github.com/mpyw/ctxmark"
)

// ===== SHOULD NOT REPORT =====

func deferred() {
	defer ctxmark.New("deferred", "release.go", 12, "release").Release()
}

func assigned() {
	g := ctxmark.Here("assigned")
	defer g.Release()
}

func declared() {
	var g = ctxmark.Here("declared")
	defer g.Release()
}

func deferredClosure() {
	g := ctxmark.Here("closure")
	defer func() {
		g.Release()
	}()
}

func enter(name string) *ctxmark.Guard {
	return ctxmark.Here(name)
}

func viaHelper() {
	g := enter("helper")
	defer g.Release()
}

func returned() *ctxmark.Guard {
	g := ctxmark.Here("returned")
	return g
}

func nested(ok bool) error {
	if ok {
		g := ctxmark.Here("nested")
		defer g.Release()
	}
	return errors.New("nested")
}

func inCase(n int) {
	switch n {
	case 1:
		g := ctxmark.Here("case")
		defer g.Release()
	}
}

func parenthesized() {
	defer (ctxmark.Here("paren")).Release()
}

func ignored() {
	//ctxmark:ignore release
	g := ctxmark.Here("ignored")
	g.Release()
}

func ignoredSameLine() {
	g := ctxmark.Here("ignored") //ctxmark:ignore - released below
	g.Release()
}

func viaDo() error {
	return ctxmark.Do("do", func() error { return nil })
}

// ===== SHOULD REPORT =====

func immediate() {
	ctxmark.Here("immediate").Release() // want `ctxmark guard from Here\(\) must be released with defer`
}

func manual() {
	g := ctxmark.New("manual", "release.go", 87, "release") // want `ctxmark guard from New\(\) must be released with defer`
	g.Release()
}

func discarded() {
	_ = ctxmark.Here("discarded") // want `ctxmark guard from Here\(\) must be released with defer`
}

func dropped() {
	ctxmark.Here("dropped") // want `ctxmark guard from Here\(\) must be released with defer`
}

func deferredBefore() {
	var g *ctxmark.Guard
	defer g.Release()
	g = ctxmark.Here("before") // want `ctxmark guard from Here\(\) must be released with defer`
}

func otherGuard() {
	a := ctxmark.Here("a")
	b := ctxmark.Here("b") // want `ctxmark guard from Here\(\) must be released with defer`
	defer a.Release()
	b.Release()
}

func viaHelperManual() {
	g := enter("helper") // want `ctxmark guard from enter\(\) must be released with defer`
	g.Release()
}

func goroutine() {
	go func() {
		ctxmark.Here("goroutine") // want `ctxmark guard from Here\(\) must be released with defer`
	}()
}

// ===== IGNORE DIRECTIVES =====

func unusedIgnore() {
	//ctxmark:ignore // want `unused ctxmark:ignore directive`
	defer ctxmark.Here("fine").Release()
}

func unusedChecker() {
	//ctxmark:ignore mark // want `unused ctxmark:ignore directive for checker\(s\): mark`
	g := ctxmark.Here("fine")
	defer g.Release()
}
