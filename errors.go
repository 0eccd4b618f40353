package ctxmark

import "errors"

// Panic payloads for invariant violations. They are wrapped with details,
// so match them with errors.Is.
var (
	ErrUnbalanced    = errors.New("ctxmark: unbalanced scope release")
	ErrDepthExceeded = errors.New("ctxmark: scope depth limit exceeded")
)

// Error annotates an error with the stack that was live when it was
// wrapped.
type Error struct {
	Err   error
	Stack []Context
}

// Wrap returns err annotated with a snapshot of the calling goroutine's
// stack. It returns nil for a nil err.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Err:   err,
		Stack: Stack(),
	}
}

func (e *Error) Error() string {
	if len(e.Stack) == 0 {
		return e.Err.Error()
	}

	return chainOf(e.Stack, DefaultSeparator) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StackOf returns the stack attached by the innermost Wrap in err's chain,
// which is the one closest to where the error originated.
func StackOf(err error) ([]Context, bool) {
	var found *Error
	for {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		found = e
		err = e.Err
	}

	if found == nil {
		return nil, false
	}

	return found.Stack, true
}
