// Package goid extracts the id of the calling goroutine.
package goid

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

const prefix = "goroutine "

// Current returns the id of the calling goroutine.
//
// The id is read from the first line of runtime.Stack, which has the form
// "goroutine 123 [running]:". Ids start at 1 and are never reused. Current
// panics if the header cannot be parsed, since a shared fallback id would
// merge the stacks of unrelated goroutines.
func Current() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return fromHeader(buf[:n])
}

// fromHeader is parse that panics on a malformed header.
func fromHeader(b []byte) uint64 {
	id := parse(b)
	if id == 0 {
		panic(fmt.Sprintf("goid: unrecognized stack header %q", b))
	}
	return id
}

// parse extracts the numeric id from a runtime.Stack header. It returns 0,
// which no goroutine has, when the header is malformed.
func parse(b []byte) uint64 {
	if !bytes.HasPrefix(b, []byte(prefix)) {
		return 0
	}

	b = b[len(prefix):]
	end := bytes.IndexByte(b, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(b[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
