package ctxmark

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// entry is one slot of a goroutine's stack. The guard pointer identifies
// which guard is allowed to pop it.
type entry struct {
	ctx   Context
	guard *Guard
}

// stack is owned by a single goroutine. Only that goroutine reads or
// mutates entries, so it needs no lock of its own.
type stack struct {
	entries []entry
}

// store maps goroutine ids to their stacks. The mutex guards map
// membership only.
var (
	storeMu sync.RWMutex
	stacks  = make(map[uint64]*stack)

	maxDepth atomic.Int64
)

// SetMaxDepth caps the number of live scopes per goroutine. Entering a scope
// beyond the cap panics with ErrDepthExceeded. Zero or a negative value
// removes the cap, which is the default.
func SetMaxDepth(n int) {
	if n < 0 {
		n = 0
	}
	maxDepth.Store(int64(n))
}

// MaxDepth returns the configured cap, 0 meaning unbounded.
func MaxDepth() int {
	return int(maxDepth.Load())
}

// lookup returns the stack of goroutine gid, or nil if it has none.
func lookup(gid uint64) *stack {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return stacks[gid]
}

// push appends g's context to the stack of the goroutine that built g.
func push(g *Guard) {
	s := lookup(g.gid)
	if s == nil {
		s = &stack{}

		storeMu.Lock()
		stacks[g.gid] = s
		storeMu.Unlock()
	}

	if limit := maxDepth.Load(); limit > 0 && int64(len(s.entries)) >= limit {
		panic(fmt.Errorf("%w: %d scopes live, entering %q", ErrDepthExceeded, len(s.entries), g.ctx.Name))
	}

	s.entries = append(s.entries, entry{ctx: g.ctx, guard: g})
}

// pop removes the innermost entry, which must belong to g.
func pop(g *Guard, gid uint64) {
	if gid != g.gid {
		panic(fmt.Errorf("%w: scope %q entered on goroutine %d, released on goroutine %d", ErrUnbalanced, g.ctx.Name, g.gid, gid))
	}

	s := lookup(gid)
	if s == nil || len(s.entries) == 0 {
		panic(fmt.Errorf("%w: releasing %q from an empty stack", ErrUnbalanced, g.ctx.Name))
	}

	last := len(s.entries) - 1
	if top := s.entries[last]; top.guard != g {
		panic(fmt.Errorf("%w: releasing %q while %q is innermost", ErrUnbalanced, g.ctx.Name, top.ctx.Name))
	}

	s.entries[last] = entry{}
	s.entries = s.entries[:last]

	if len(s.entries) == 0 {
		drop(gid)
	}
}

// drop forgets the stack of goroutine gid.
func drop(gid uint64) {
	storeMu.Lock()
	delete(stacks, gid)
	storeMu.Unlock()
}

