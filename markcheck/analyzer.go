// Package markcheck provides a go/analysis based analyzer that generates and
// checks ctxmark scope guards.
package markcheck

import (
	"errors"
	"flag"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/ctxmark/internal/checkers/mark"
	"github.com/mpyw/ctxmark/internal/checkers/release"
	"github.com/mpyw/ctxmark/internal/context"
	"github.com/mpyw/ctxmark/internal/directive/ignore"
	markdirective "github.com/mpyw/ctxmark/internal/directive/mark"
	"github.com/mpyw/ctxmark/internal/funcspec"
)

// Flags for the analyzer.
var (
	requireMark string

	// Checker enable/disable flags (all enabled by default).
	enableMark    bool
	enableRelease bool
)

func init() {
	Analyzer.Flags.StringVar(&requireMark, "require-mark", "",
		"comma-separated list of functions that must enter a scope without a directive (e.g., pkg.Func or pkg.Type.Method)")

	Analyzer.Flags.BoolVar(&enableMark, "mark", true, "enable mark checker")
	Analyzer.Flags.BoolVar(&enableRelease, "release", true, "enable release checker")
}

// Analyzer is the main analyzer for ctxmark.
var Analyzer = &analysis.Analyzer{
	Name:     "ctxmark",
	Doc:      "inserts ctxmark scopes into //ctxmark:mark functions and checks that scope guards are released with defer",
	URL:      "https://pkg.go.dev/github.com/mpyw/ctxmark/markcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	skipFiles := buildSkipFiles(pass)

	cctx := &context.CheckContext{
		Pass:       pass,
		IgnoreMaps: buildIgnoreMaps(pass, skipFiles),
		SkipFiles:  skipFiles,
	}

	if enableMark {
		targets := markdirective.Build(pass, funcspec.ParseList(requireMark), skipFiles)
		mark.New(targets).Check(cctx)
	}

	if enableRelease {
		release.New().Check(cctx, insp)
	}

	reportUnusedIgnores(pass, cctx.IgnoreMaps, buildEnabledCheckers())

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// buildEnabledCheckers creates a map of which checkers are enabled.
func buildEnabledCheckers() ignore.EnabledCheckers {
	enabled := make(ignore.EnabledCheckers)

	if enableMark {
		enabled[ignore.Mark] = true
	}

	if enableRelease {
		enabled[ignore.Release] = true
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledCheckers) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Checkers) == 0 {
				pass.Reportf(unused.Pos, "unused ctxmark:ignore directive")
			} else {
				checkerNames := make([]string, len(unused.Checkers))
				for i, c := range unused.Checkers {
					checkerNames[i] = string(c)
				}
				pass.Reportf(unused.Pos, "unused ctxmark:ignore directive for checker(s): %s", strings.Join(checkerNames, ", "))
			}
		}
	}
}
