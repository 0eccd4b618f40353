package markfix

import (
	"fmt"
)

//ctxmark:mark // want `marked function "First" does not enter a ctxmark scope`
func First() {
	fmt.Println("first")
}

//ctxmark:mark second // want `marked function "second" does not enter a ctxmark scope`
func Second() { fmt.Println("second") }
