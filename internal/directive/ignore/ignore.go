package ignore

import (
	"go/ast"
	"go/token"
	"strings"
)

const directive = "ctxmark:ignore"

// CheckerName represents a checker that can be ignored.
type CheckerName string

// Valid checker names.
const (
	Mark    CheckerName = "mark"
	Release CheckerName = "release"
)

// AllCheckerNames returns all valid checker names.
func AllCheckerNames() []CheckerName {
	return []CheckerName{
		Mark,
		Release,
	}
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos      token.Pos            // Position of the ignore comment
	checkers []CheckerName        // List of checker names (empty = all)
	used     map[CheckerName]bool // Track usage per checker
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledCheckers tracks which checkers are currently enabled.
type EnabledCheckers map[CheckerName]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if checkers, ok := parseIgnoreComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:      c.Pos(),
					checkers: checkers,
					used:     make(map[CheckerName]bool),
				}
			}
		}
	}

	return m
}

// parseIgnoreComment parses an ignore directive and returns the checker names.
// Returns nil slice if no specific checkers are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //ctxmark:ignore                   -> ignore all checkers
//   - //ctxmark:ignore release           -> ignore specific checker
//   - //ctxmark:ignore mark,release      -> ignore multiple checkers
//   - //ctxmark:ignore - reason          -> ignore all with comment
//   - //ctxmark:ignore release - reason  -> ignore specific with comment
func parseIgnoreComment(text string) ([]CheckerName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, directive) {
		return nil, false
	}

	rest := strings.TrimPrefix(text, directive)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false // e.g. "ctxmark:ignored"
	}
	rest = strings.TrimSpace(rest)

	if rest == "" || strings.HasPrefix(rest, "//") {
		return nil, true
	}

	// These indicate the start of a human-readable comment
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	checkers := make([]CheckerName, 0, len(parts))

	for _, part := range parts {
		name := CheckerName(strings.TrimSpace(part))
		if name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore returns true if the given line should be ignored for the specified checker.
// It checks if the same line or the previous line has an ignore comment.
// When an ignore is used, it marks the entry as used for that checker.
func (m Map) ShouldIgnore(line int, checker CheckerName) bool {
	if m.shouldIgnoreEntry(m[line], checker) {
		return true
	}
	if m.shouldIgnoreEntry(m[line-1], checker) {
		return true
	}

	return false
}

// shouldIgnoreEntry checks if an entry ignores the specified checker.
func (m Map) shouldIgnoreEntry(entry *Entry, checker CheckerName) bool {
	if entry == nil {
		return false
	}

	if len(entry.checkers) == 0 {
		entry.used[checker] = true
		return true
	}

	for _, c := range entry.checkers {
		if c == checker {
			entry.used[checker] = true
			return true
		}
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos      token.Pos
	Checkers []CheckerName // Unused checker names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that were not used.
// Checker names that are not enabled (or unknown) are always reported.
func (m Map) GetUnusedIgnores(enabled EnabledCheckers) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.checkers) == 0 {
			anyUsed := false
			for checker := range enabled {
				if entry.used[checker] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var unusedCheckers []CheckerName
		for _, checker := range entry.checkers {
			if !enabled[checker] || !entry.used[checker] {
				unusedCheckers = append(unusedCheckers, checker)
			}
		}
		if len(unusedCheckers) > 0 {
			unused = append(unused, UnusedIgnore{
				Pos:      entry.pos,
				Checkers: unusedCheckers,
			})
		}
	}

	return unused
}
