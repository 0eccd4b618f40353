package mark

import (
	"fmt"

	"github.com/mpyw/ctxmark"
)

//ctxmark:mark // want `marked function "Bare" does not enter a ctxmark scope`
func Bare() {
	fmt.Println("bare")
}

//ctxmark:mark load-config // want `marked function "load-config" does not enter a ctxmark scope`
func LoadConfig() {}

//ctxmark:mark "load config" // want `marked function "load config" does not enter a ctxmark scope`
func LoadConfigQuoted() {}

// Documented explains itself first.
//
//ctxmark:mark // want `marked function "Documented" does not enter a ctxmark scope`
func Documented() {}

//ctxmark:mark
func Entered() {
	defer ctxmark.New("Entered", "mark.go", 27, "mark").Release()
	fmt.Println("entered")
}

//ctxmark:mark
func EnteredVar() {
	g := ctxmark.Here("EnteredVar")
	defer g.Release()
}

//ctxmark:mark // want `marked function "Late" does not enter a ctxmark scope`
func Late() {
	fmt.Println("late")
	defer ctxmark.Here("Late").Release()
}

type Loader struct{}

//ctxmark:mark // want `marked function "Loader.Load" does not enter a ctxmark scope`
func (l *Loader) Load() error {
	return nil
}

type Cache[K comparable] struct{}

//ctxmark:mark // want `marked function "Cache.Get" does not enter a ctxmark scope`
func (c Cache[K]) Get(k K) bool {
	return false
}

//ctxmark:ignore mark
//ctxmark:mark
func Skipped() {}

//ctxmark:marker
func NotADirective() {}

func Unmarked() {
	fmt.Println("unmarked")
}
