package typeutil

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Runtime package and guard type recognized by the analyzer.
const (
	GuardPkgPath  = "github.com/mpyw/ctxmark"
	GuardTypeName = "Guard"
)

// IsNamedType checks if the expression has the given named type.
// It handles pointer types automatically.
func IsNamedType(pass *analysis.Pass, expr ast.Expr, pkgPath, typeName string) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok {
		return false
	}

	return isNamedTypeFromType(tv.Type, pkgPath, typeName)
}

// isNamedTypeFromType checks if the type matches the given package path and type name.
func isNamedTypeFromType(t types.Type, pkgPath, typeName string) bool {
	t = unwrapPointer(t)

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == pkgPath && obj.Name() == typeName
}

// unwrapPointer returns the element type if t is a pointer, otherwise returns t.
func unwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// IsGuardType checks if the type is ctxmark.Guard or *ctxmark.Guard.
func IsGuardType(t types.Type) bool {
	return isNamedTypeFromType(t, GuardPkgPath, GuardTypeName)
}

// IsGuardExpr checks if the expression evaluates to a ctxmark guard.
func IsGuardExpr(pass *analysis.Pass, expr ast.Expr) bool {
	return IsNamedType(pass, expr, GuardPkgPath, GuardTypeName)
}

// ReleasedGuard returns the guard expression X of a call X.Release().
func ReleasedGuard(pass *analysis.Pass, call *ast.CallExpr) (ast.Expr, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Release" {
		return nil, false
	}
	if !IsGuardExpr(pass, sel.X) {
		return nil, false
	}

	return ast.Unparen(sel.X), true
}
