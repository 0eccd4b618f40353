// Package context provides CheckContext for the ctxmark checkers.
package context

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/ctxmark/internal/directive/ignore"
	"github.com/mpyw/ctxmark/internal/funcspec"
)

// CheckContext carries the pass and per-file directive state shared by the
// checkers.
type CheckContext struct {
	Pass       *analysis.Pass
	IgnoreMaps map[string]ignore.Map
	SkipFiles  map[string]bool
}

// Skipped reports whether pos lies in a file excluded from analysis.
func (c *CheckContext) Skipped(pos token.Pos) bool {
	return c.SkipFiles[c.Pass.Fset.Position(pos).Filename]
}

// Report reports a diagnostic unless an ignore directive for checker covers
// its line.
func (c *CheckContext) Report(pos token.Pos, checker ignore.CheckerName, msg string, fixes ...analysis.SuggestedFix) {
	position := c.Pass.Fset.Position(pos)
	if c.SkipFiles[position.Filename] {
		return
	}
	if m, ok := c.IgnoreMaps[position.Filename]; ok && m.ShouldIgnore(position.Line, checker) {
		return
	}

	c.Pass.Report(analysis.Diagnostic{
		Pos:            pos,
		Category:       string(checker),
		Message:        msg,
		SuggestedFixes: fixes,
	})
}

// Reportf is Report with formatting and no fixes.
func (c *CheckContext) Reportf(pos token.Pos, checker ignore.CheckerName, format string, args ...any) {
	c.Report(pos, checker, fmt.Sprintf(format, args...))
}

// VarOf extracts *types.Var from an identifier.
// Returns nil if the identifier doesn't refer to a variable.
func (c *CheckContext) VarOf(ident *ast.Ident) *types.Var {
	obj := c.Pass.TypesInfo.ObjectOf(ident)
	if obj == nil {
		return nil
	}
	v, ok := obj.(*types.Var)
	if !ok {
		return nil
	}
	return v
}

// FuncOf extracts the types.Func from a call expression.
func (c *CheckContext) FuncOf(call *ast.CallExpr) *types.Func {
	return funcspec.ExtractFunc(c.Pass, call)
}
