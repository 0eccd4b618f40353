package markfix

//ctxmark:mark // want `marked function "Bare" does not enter a ctxmark scope`
func Bare() {
}
