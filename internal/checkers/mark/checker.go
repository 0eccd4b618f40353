// Package mark checks that //ctxmark:mark functions enter their scope and
// generates the missing guard.
package mark

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/ctxmark/internal/context"
	"github.com/mpyw/ctxmark/internal/directive/ignore"
	markdirective "github.com/mpyw/ctxmark/internal/directive/mark"
	"github.com/mpyw/ctxmark/internal/typeutil"
)

// Checker reports marked functions that do not enter a scope.
type Checker struct {
	targets []markdirective.Target
}

// New creates a mark checker for the given targets.
func New(targets []markdirective.Target) *Checker {
	return &Checker{targets: targets}
}

// Check reports every target missing its guard, with a fix inserting it.
func (c *Checker) Check(cctx *context.CheckContext) {
	// Fixes for one file are applied together, so each inserted statement
	// shifts the lines of the functions after it.
	shift := make(map[*ast.File]int)

	for _, target := range c.targets {
		if EntersScope(cctx.Pass, target.Decl.Body) {
			continue
		}

		fix, lines := c.fix(cctx, target, shift[target.File])
		shift[target.File] += lines

		cctx.Report(
			target.Pos,
			ignore.Mark,
			fmt.Sprintf("marked function %q does not enter a ctxmark scope", target.Name),
			fix,
		)
	}
}

// fix builds the edit inserting the guard as the first statement of the
// target's body, adding the import if needed. prior is the number of lines
// earlier fixes in the same file insert above the target. It returns the
// number of lines the guard statement itself adds.
func (c *Checker) fix(cctx *context.CheckContext, target markdirective.Target, prior int) (analysis.SuggestedFix, int) {
	pass := cctx.Pass

	qualifier, importEdit, importLines := ImportEdit(target.File, typeutil.GuardPkgPath, "ctxmark")

	body := target.Decl.Body
	lbrace := pass.Fset.Position(body.Lbrace)

	// A guard appended to a one-line body needs its own line after it too.
	trailing := ""
	next := body.Rbrace
	if len(body.List) > 0 {
		next = body.List[0].Pos()
	}
	if pass.Fset.Position(next).Line == lbrace.Line {
		trailing = "\n"
	}

	// Identical import edits from several fixes collapse into one, so the
	// import shifts every function in the file by the same amount.
	line := lbrace.Line + 1 + prior + importLines
	lit, err := safecast.Conv[uint32](line)
	if err != nil {
		lit = 0
	}

	stmt := fmt.Sprintf("defer %sNew(%s, %s, %d, %s).Release()",
		qualifier,
		strconv.Quote(target.Name),
		strconv.Quote(filepath.Base(lbrace.Filename)),
		lit,
		strconv.Quote(pass.Pkg.Path()),
	)

	edits := make([]analysis.TextEdit, 0, 2)
	if importEdit != nil {
		edits = append(edits, *importEdit)
	}
	edits = append(edits, analysis.TextEdit{
		Pos:     body.Lbrace + 1,
		End:     body.Lbrace + 1,
		NewText: []byte("\n\t" + stmt + trailing),
	})

	return analysis.SuggestedFix{
		Message:   "Insert ctxmark guard",
		TextEdits: edits,
	}, 1 + strings.Count(trailing, "\n")
}

// EntersScope reports whether body starts by entering a scope released by
// defer, either as
//
//	defer ctxmark.New(...).Release()
//
// or as
//
//	g := ctxmark.New(...)
//	defer g.Release()
func EntersScope(pass *analysis.Pass, body *ast.BlockStmt) bool {
	if len(body.List) == 0 {
		return false
	}

	switch stmt := body.List[0].(type) {
	case *ast.DeferStmt:
		x, ok := typeutil.ReleasedGuard(pass, stmt.Call)
		if !ok {
			return false
		}
		_, isCall := x.(*ast.CallExpr)
		return isCall

	case *ast.AssignStmt:
		if len(body.List) < 2 || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			return false
		}
		lhs, ok := stmt.Lhs[0].(*ast.Ident)
		if !ok || !typeutil.IsGuardExpr(pass, stmt.Rhs[0]) {
			return false
		}
		deferStmt, ok := body.List[1].(*ast.DeferStmt)
		if !ok {
			return false
		}
		x, ok := typeutil.ReleasedGuard(pass, deferStmt.Call)
		if !ok {
			return false
		}
		ident, ok := x.(*ast.Ident)
		return ok && pass.TypesInfo.ObjectOf(ident) == pass.TypesInfo.ObjectOf(lhs)
	}

	return false
}
