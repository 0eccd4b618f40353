package mark

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestImportEdit(t *testing.T) {
	const path = "github.com/mpyw/ctxmark"

	tests := []struct {
		name      string
		src       string
		qualifier string
		want      string // source after the edit; empty means no edit
		lines     int
	}{
		{
			name:      "already imported",
			src:       "package p\n\nimport \"github.com/mpyw/ctxmark\"\n",
			qualifier: "ctxmark.",
		},
		{
			name:      "aliased",
			src:       "package p\n\nimport cm \"github.com/mpyw/ctxmark\"\n",
			qualifier: "cm.",
		},
		{
			name:      "dot import",
			src:       "package p\n\nimport . \"github.com/mpyw/ctxmark\"\n",
			qualifier: "",
		},
		{
			name:      "blank import only",
			src:       "package p\n\nimport _ \"github.com/mpyw/ctxmark\"\n",
			qualifier: "ctxmark.",
			want:      "package p\n\nimport _ \"github.com/mpyw/ctxmark\"\nimport \"github.com/mpyw/ctxmark\"\n",
			lines:     1,
		},
		{
			name:      "grouped imports",
			src:       "package p\n\nimport (\n\t\"fmt\"\n)\n",
			qualifier: "ctxmark.",
			want:      "package p\n\nimport (\n\t\"github.com/mpyw/ctxmark\"\n\t\"fmt\"\n)\n",
			lines:     1,
		},
		{
			name:      "single import",
			src:       "package p\n\nimport \"fmt\"\n",
			qualifier: "ctxmark.",
			want:      "package p\n\nimport \"fmt\"\nimport \"github.com/mpyw/ctxmark\"\n",
			lines:     1,
		},
		{
			name:      "no imports",
			src:       "package p\n\nfunc f() {}\n",
			qualifier: "ctxmark.",
			want:      "package p\n\nimport \"github.com/mpyw/ctxmark\"\n\nfunc f() {}\n",
			lines:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fset := token.NewFileSet()
			file, err := parser.ParseFile(fset, "p.go", tt.src, 0)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}

			qualifier, edit, lines := ImportEdit(file, path, "ctxmark")
			if qualifier != tt.qualifier {
				t.Errorf("qualifier = %q, want %q", qualifier, tt.qualifier)
			}
			if lines != tt.lines {
				t.Errorf("lines = %d, want %d", lines, tt.lines)
			}

			if tt.want == "" {
				if edit != nil {
					t.Errorf("unexpected edit %q", edit.NewText)
				}
				return
			}
			if edit == nil {
				t.Fatal("expected an edit")
			}

			start := fset.Position(edit.Pos).Offset
			end := fset.Position(edit.End).Offset
			got := tt.src[:start] + string(edit.NewText) + tt.src[end:]
			if got != tt.want {
				t.Errorf("edited source =\n%s\nwant\n%s", got, tt.want)
			}
			if n := strings.Count(string(edit.NewText), "\n"); n != lines {
				t.Errorf("edit inserts %d lines, reported %d", n, lines)
			}
		})
	}
}
