package mark

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/ctxmark/internal/funcspec"
)

const directive = "ctxmark:mark"

// Target is a function declaration that must enter a ctxmark scope.
type Target struct {
	Decl *ast.FuncDecl
	File *ast.File
	Name string    // scope name to use
	Pos  token.Pos // directive position, or the declaration for -require-mark
}

// Build collects functions marked with the directive, plus functions
// matching any of required.
func Build(pass *analysis.Pass, required []funcspec.Spec, skipFiles map[string]bool) []Target {
	var targets []Target

	for _, file := range pass.Files {
		if skipFiles[pass.Fset.Position(file.Pos()).Filename] {
			continue
		}
		targets = append(targets, buildForFile(pass, file, required)...)
	}

	return targets
}

// buildForFile scans a single file for marked functions.
func buildForFile(pass *analysis.Pass, file *ast.File, required []funcspec.Spec) []Target {
	var targets []Target

	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Body == nil {
			continue
		}

		target := Target{
			Decl: funcDecl,
			File: file,
			Name: DefaultName(funcDecl),
		}

		if c, name, ok := findDirective(funcDecl.Doc); ok {
			target.Pos = c.Pos()
			if name != "" {
				target.Name = name
			}
			targets = append(targets, target)
			continue
		}

		if len(required) == 0 {
			continue
		}

		fn, ok := pass.TypesInfo.ObjectOf(funcDecl.Name).(*types.Func)
		if !ok || !funcspec.MatchesAny(required, fn) {
			continue
		}

		target.Pos = funcDecl.Name.Pos()
		targets = append(targets, target)
	}

	return targets
}

// findDirective returns the directive comment in a doc comment group along
// with its optional name argument.
func findDirective(doc *ast.CommentGroup) (*ast.Comment, string, bool) {
	if doc == nil {
		return nil, "", false
	}

	for _, c := range doc.List {
		if name, ok := parseComment(c.Text); ok {
			return c, name, true
		}
	}

	return nil, "", false
}

// parseComment parses a mark directive and returns its name argument,
// which is empty when omitted.
//
// Supported formats:
//   - //ctxmark:mark
//   - //ctxmark:mark load-config
//   - //ctxmark:mark "load config"
func parseComment(text string) (string, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, directive) {
		return "", false
	}

	rest := strings.TrimPrefix(text, directive)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	rest = strings.TrimSpace(rest)

	if strings.HasPrefix(rest, "//") {
		return "", true
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = strings.TrimSpace(rest[:idx])
	}

	if len(rest) >= 2 && rest[0] == '"' && rest[len(rest)-1] == '"' {
		return rest[1 : len(rest)-1], true
	}
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		rest = rest[:idx]
	}

	return rest, true
}

// DefaultName returns "Func" for functions and "Type.Method" for methods.
func DefaultName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}

	if recv := receiverTypeName(decl.Recv.List[0].Type); recv != "" {
		return recv + "." + decl.Name.Name
	}
	return decl.Name.Name
}

// receiverTypeName extracts T from T, *T, T[P] and *T[P].
func receiverTypeName(expr ast.Expr) string {
	switch e := ast.Unparen(expr).(type) {
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.IndexExpr:
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}
