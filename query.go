package ctxmark

import (
	"strings"

	"github.com/mpyw/ctxmark/internal/goid"
)

// DefaultSeparator is the separator used by Chain.
const DefaultSeparator = ">"

// Stack returns a copy of the calling goroutine's stack, outermost scope
// first. The result is never nil and is not affected by later scopes.
func Stack() []Context {
	s := lookup(goid.Current())
	if s == nil {
		return []Context{}
	}

	out := make([]Context, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.ctx
	}

	return out
}

// Depth returns the number of live scopes on the calling goroutine.
func Depth() int {
	s := lookup(goid.Current())
	if s == nil {
		return 0
	}

	return len(s.entries)
}

// Chain renders the calling goroutine's stack as ">outer>inner". It returns
// "" when no scope is live.
func Chain() string {
	return ChainWith(DefaultSeparator)
}

// ChainWith is like Chain with a custom separator. The separator precedes
// every name, including the first.
func ChainWith(sep string) string {
	return chainOf(Stack(), sep)
}

func chainOf(ctxs []Context, sep string) string {
	var sb strings.Builder
	for _, c := range ctxs {
		sb.WriteString(sep)
		sb.WriteString(c.Name)
	}

	return sb.String()
}
