package ctxmark

import "fmt"

// Context describes one active scope.
type Context struct {
	Name   string // scope name, e.g. "load" or "Server.Handle"
	File   string // file the scope was entered from
	Line   uint32 // line the scope was entered from
	Module string // package path the scope was entered from
}

// String returns a debug rendering that includes every field.
func (c Context) String() string {
	return fmt.Sprintf("Context { name: %q, file: %q, line: %d, module: %q }", c.Name, c.File, c.Line, c.Module)
}
