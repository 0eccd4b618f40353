package markfix

import (
	cm "github.com/mpyw/ctxmark"
)

var _ = cm.Here

//ctxmark:mark // want `marked function "Aliased" does not enter a ctxmark scope`
func Aliased() {
}
