package mark

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

func TestParseComment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantName string
		wantOk   bool
	}{
		{name: "bare", text: "//ctxmark:mark", wantName: "", wantOk: true},
		{name: "named", text: "//ctxmark:mark load-config", wantName: "load-config", wantOk: true},
		{name: "quoted", text: `//ctxmark:mark "load config"`, wantName: "load config", wantOk: true},
		{name: "trailing comment", text: "//ctxmark:mark load // reason", wantName: "load", wantOk: true},
		{name: "bare with trailing comment", text: "//ctxmark:mark // reason", wantName: "", wantOk: true},
		{name: "extra words", text: "//ctxmark:mark load config", wantName: "load", wantOk: true},
		{name: "leading space", text: "// ctxmark:mark", wantName: "", wantOk: true},
		{name: "other directive", text: "//ctxmark:ignore", wantName: "", wantOk: false},
		{name: "same prefix", text: "//ctxmark:marker", wantName: "", wantOk: false},
		{name: "regular comment", text: "// marks the spot", wantName: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseComment(tt.text)
			if ok != tt.wantOk || got != tt.wantName {
				t.Errorf("parseComment(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.wantName, tt.wantOk)
			}
		})
	}
}

func TestDefaultNameAndDirective(t *testing.T) {
	src := `package test

type Server struct{}
type List[T any] struct{}

// Handle serves one request.
//
//ctxmark:mark
func (s *Server) Handle() {}

//ctxmark:mark "list push"
func (l *List[T]) Push(v T) {}

func (Server) Close() {}

func run() {}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	tests := []struct {
		fn            string
		wantName      string
		wantDirective bool
		wantArg       string
	}{
		{fn: "Handle", wantName: "Server.Handle", wantDirective: true},
		{fn: "Push", wantName: "List.Push", wantDirective: true, wantArg: "list push"},
		{fn: "Close", wantName: "Server.Close"},
		{fn: "run", wantName: "run"},
	}

	decls := map[string]*ast.FuncDecl{}
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			decls[fd.Name.Name] = fd
		}
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			decl := decls[tt.fn]
			if decl == nil {
				t.Fatalf("declaration %s not found", tt.fn)
			}
			if got := DefaultName(decl); got != tt.wantName {
				t.Errorf("DefaultName() = %q, want %q", got, tt.wantName)
			}
			_, arg, ok := findDirective(decl.Doc)
			if ok != tt.wantDirective || arg != tt.wantArg {
				t.Errorf("findDirective() = (%q, %v), want (%q, %v)", arg, ok, tt.wantArg, tt.wantDirective)
			}
		})
	}
}
