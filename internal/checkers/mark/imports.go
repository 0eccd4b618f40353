package mark

import (
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/analysis"
)

// ImportEdit returns the qualifier to use for pkgPath in file, e.g.
// "ctxmark.", together with the edit adding the import when file does not
// have it yet, and the number of lines that edit inserts.
func ImportEdit(file *ast.File, pkgPath, name string) (string, *analysis.TextEdit, int) {
	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || p != pkgPath {
			continue
		}

		switch {
		case spec.Name == nil:
			return name + ".", nil, 0
		case spec.Name.Name == ".":
			return "", nil, 0
		case spec.Name.Name == "_":
			continue
		default:
			return spec.Name.Name + ".", nil, 0
		}
	}

	quoted := strconv.Quote(pkgPath)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		if gen.Lparen.IsValid() {
			return name + ".", &analysis.TextEdit{
				Pos:     gen.Lparen + 1,
				End:     gen.Lparen + 1,
				NewText: []byte("\n\t" + quoted),
			}, 1
		}

		return name + ".", &analysis.TextEdit{
			Pos:     gen.End(),
			End:     gen.End(),
			NewText: []byte("\nimport " + quoted),
		}, 1
	}

	return name + ".", &analysis.TextEdit{
		Pos:     file.Name.End(),
		End:     file.Name.End(),
		NewText: []byte("\n\nimport " + quoted),
	}, 2
}
