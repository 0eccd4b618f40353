package ctxmark

// LiveStacks reports how many goroutines currently hold a stack.
func LiveStacks() int {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return len(stacks)
}

// PackagePath exposes packagePath for tests.
var PackagePath = packagePath
