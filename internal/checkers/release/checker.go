// Package release checks that every ctxmark guard is released with defer.
package release

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/ctxmark/internal/context"
	"github.com/mpyw/ctxmark/internal/directive/ignore"
	"github.com/mpyw/ctxmark/internal/typeutil"
)

// Checker reports guards that are not released on every exit path.
type Checker struct{}

// New creates a new release checker.
func New() *Checker {
	return &Checker{}
}

// Check inspects every call producing a guard.
func (c *Checker) Check(cctx *context.CheckContext, insp *inspector.Inspector) {
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		call := n.(*ast.CallExpr)
		if !typeutil.IsGuardExpr(cctx.Pass, call) || cctx.Skipped(call.Pos()) {
			return true
		}
		if tv, ok := cctx.Pass.TypesInfo.Types[call.Fun]; ok && tv.IsType() {
			return true // conversion
		}

		if !releasedByDefer(cctx, call, stack) {
			cctx.Reportf(call.Pos(), ignore.Release, "ctxmark guard from %s must be released with defer", calleeName(cctx, call))
		}

		return true
	})
}

// calleeName names the constructor for diagnostics, e.g. "New()".
func calleeName(cctx *context.CheckContext, call *ast.CallExpr) string {
	if fn := cctx.FuncOf(call); fn != nil {
		return fn.Name() + "()"
	}
	return "call"
}

// releasedByDefer checks the accepted shapes:
//
//	defer ctxmark.New(...).Release()
//
//	g := ctxmark.New(...)
//	...
//	defer g.Release()
//
//	return ctxmark.New(...)
func releasedByDefer(cctx *context.CheckContext, call *ast.CallExpr, stack []ast.Node) bool {
	parent, i := parentOf(stack, len(stack)-1)
	if parent == nil {
		return false
	}

	switch p := parent.(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.SelectorExpr:
		if p.Sel.Name != "Release" {
			return false
		}
		releaseCall, j := parentOf(stack, i)
		if _, ok := releaseCall.(*ast.CallExpr); !ok {
			return false
		}
		deferStmt, _ := parentOf(stack, j)
		_, ok := deferStmt.(*ast.DeferStmt)
		return ok

	case *ast.AssignStmt:
		v := assignedVar(cctx, p, call)
		if v == nil {
			return false
		}
		return laterDeferReleases(cctx, stack[:i], p, v)

	case *ast.ValueSpec:
		v := specVar(cctx, p, call)
		if v == nil {
			return false
		}
		// ValueSpec -> GenDecl -> DeclStmt
		_, j := parentOf(stack, i)
		declStmt, k := parentOf(stack, j)
		stmt, ok := declStmt.(*ast.DeclStmt)
		if !ok {
			return false
		}
		return laterDeferReleases(cctx, stack[:k], stmt, v)
	}

	return false
}

// parentOf returns the nearest non-paren ancestor of stack[i] and its index.
func parentOf(stack []ast.Node, i int) (ast.Node, int) {
	for j := i - 1; j >= 0; j-- {
		if _, ok := stack[j].(*ast.ParenExpr); ok {
			continue
		}
		return stack[j], j
	}
	return nil, -1
}

// assignedVar returns the variable receiving call in a one-to-one
// assignment.
func assignedVar(cctx *context.CheckContext, assign *ast.AssignStmt, call *ast.CallExpr) *types.Var {
	if len(assign.Lhs) != len(assign.Rhs) {
		return nil
	}
	for i, rhs := range assign.Rhs {
		if ast.Unparen(rhs) != call {
			continue
		}
		ident, ok := assign.Lhs[i].(*ast.Ident)
		if !ok {
			return nil
		}
		return cctx.VarOf(ident)
	}
	return nil
}

// specVar is assignedVar for var declarations.
func specVar(cctx *context.CheckContext, spec *ast.ValueSpec, call *ast.CallExpr) *types.Var {
	if len(spec.Names) != len(spec.Values) {
		return nil
	}
	for i, value := range spec.Values {
		if ast.Unparen(value) == call {
			return cctx.VarOf(spec.Names[i])
		}
	}
	return nil
}

// laterDeferReleases looks for a statement after stmt, in the statement
// list enclosing it, that defers v.Release() or returns v.
func laterDeferReleases(cctx *context.CheckContext, ancestors []ast.Node, stmt ast.Stmt, v *types.Var) bool {
	list := enclosingList(ancestors)

	found := false
	for _, s := range list {
		if s == stmt {
			found = true
			continue
		}
		if !found {
			continue
		}

		switch s := s.(type) {
		case *ast.DeferStmt:
			if defersRelease(cctx, s, v) {
				return true
			}
		case *ast.ReturnStmt:
			for _, r := range s.Results {
				if refersTo(cctx, r, v) {
					return true
				}
			}
		}
	}

	return false
}

// enclosingList returns the statement list of the innermost block, case or
// comm clause in ancestors.
func enclosingList(ancestors []ast.Node) []ast.Stmt {
	for i := len(ancestors) - 1; i >= 0; i-- {
		switch n := ancestors[i].(type) {
		case *ast.BlockStmt:
			return n.List
		case *ast.CaseClause:
			return n.Body
		case *ast.CommClause:
			return n.Body
		}
	}
	return nil
}

// defersRelease matches "defer v.Release()" and deferred closures calling
// v.Release().
func defersRelease(cctx *context.CheckContext, d *ast.DeferStmt, v *types.Var) bool {
	if isReleaseOf(cctx, d.Call, v) {
		return true
	}

	lit, ok := ast.Unparen(d.Call.Fun).(*ast.FuncLit)
	if !ok {
		return false
	}

	released := false
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok && isReleaseOf(cctx, call, v) {
			released = true
		}
		return !released
	})
	return released
}

func isReleaseOf(cctx *context.CheckContext, call *ast.CallExpr, v *types.Var) bool {
	x, ok := typeutil.ReleasedGuard(cctx.Pass, call)
	if !ok {
		return false
	}
	return refersTo(cctx, x, v)
}

func refersTo(cctx *context.CheckContext, expr ast.Expr, v *types.Var) bool {
	ident, ok := ast.Unparen(expr).(*ast.Ident)
	return ok && cctx.VarOf(ident) == v
}
