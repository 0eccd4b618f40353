// Package zerologmark carries ctxmark scope chains into zerolog events.
//
//	logger := zerolog.New(os.Stderr).Hook(zerologmark.Hook{})
//
//	defer ctxmark.Here("load").Release()
//	logger.Info().Msg("loading") // {"level":"info","ctx":">load","message":"loading"}
package zerologmark

import (
	"github.com/rs/zerolog"

	"github.com/mpyw/ctxmark"
)

// DefaultKey is the field name used when Hook.Key is empty.
const DefaultKey = "ctx"

// Hook adds the chain of the logging goroutine to every event. Events logged
// outside any scope are left untouched.
type Hook struct {
	Key       string // field name, DefaultKey if empty
	Separator string // chain separator, ctxmark.DefaultSeparator if empty
}

// Run implements zerolog.Hook.
func (h Hook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	sep := h.Separator
	if sep == "" {
		sep = ctxmark.DefaultSeparator
	}

	chain := ctxmark.ChainWith(sep)
	if chain == "" {
		return
	}

	key := h.Key
	if key == "" {
		key = DefaultKey
	}
	e.Str(key, chain)
}

// Stack returns the calling goroutine's stack as an array of objects with
// name, file, line and module fields.
//
//	logger.Error().Array("stack", zerologmark.Stack()).Msg("failed")
func Stack() *zerolog.Array {
	arr := zerolog.Arr()
	for _, c := range ctxmark.Stack() {
		arr.Object(contextObject(c))
	}

	return arr
}

type contextObject ctxmark.Context

func (c contextObject) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", c.Name).
		Str("file", c.File).
		Uint32("line", c.Line).
		Str("module", c.Module)
}
