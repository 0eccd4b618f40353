package ctxmark

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// output is the destination of PrintStack and PrintChain; nil means the
// os.Stdout of the moment.
var (
	outputMu sync.RWMutex
	output   io.Writer
)

// SetOutput sets the destination of PrintStack and PrintChain. A nil writer
// restores os.Stdout.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

func currentOutput() io.Writer {
	outputMu.RLock()
	defer outputMu.RUnlock()

	if output == nil {
		return os.Stdout
	}
	return output
}

// PrintStack writes the calling goroutine's stack to the output, one
// Context per line.
func PrintStack() {
	// Best-effort diagnostics; write errors are dropped.
	_ = FprintStack(currentOutput())
}

// PrintChain writes Chain() to the output.
func PrintChain() {
	_ = FprintChain(currentOutput())
}

// FprintStack writes the calling goroutine's stack to w, one Context per
// line.
func FprintStack(w io.Writer) error {
	for _, c := range Stack() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}

	return nil
}

// FprintChain writes Chain() followed by a newline to w.
func FprintChain(w io.Writer) error {
	_, err := fmt.Fprintln(w, Chain())
	return err
}
