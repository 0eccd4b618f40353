// Package zapmark carries ctxmark scope chains into zap logs.
package zapmark

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mpyw/ctxmark"
)

// Key is the field name used for the scope chain.
const Key = "ctx"

// Field returns the calling goroutine's chain as a string field.
func Field() zap.Field {
	return zap.String(Key, ctxmark.Chain())
}

// Stack returns the calling goroutine's stack as an array field of objects
// with name, file, line and module keys.
func Stack() zap.Field {
	return zap.Array("stack", stackArray(ctxmark.Stack()))
}

// WrapCore returns a core that adds the chain of the logging goroutine to
// every entry written while a scope is live. Level filtering and sampling
// stay with the wrapped core. Use it with zap.WrapCore:
//
//	logger := zap.New(core, zap.WrapCore(zapmark.WrapCore))
func WrapCore(c zapcore.Core) zapcore.Core {
	return &core{Core: c}
}

type core struct {
	zapcore.Core
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{Core: c.Core.With(fields)}
}

// Check runs on the goroutine that logged the entry. The chain is attached
// with With so the wrapped core registers itself on ce.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	chain := ctxmark.Chain()
	if chain == "" {
		return c.Core.Check(ent, ce)
	}
	return c.Core.With([]zapcore.Field{zap.String(Key, chain)}).Check(ent, ce)
}

type stackArray []ctxmark.Context

func (s stackArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, c := range s {
		if err := enc.AppendObject(contextObject(c)); err != nil {
			return err
		}
	}
	return nil
}

type contextObject ctxmark.Context

func (c contextObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", c.Name)
	enc.AddString("file", c.File)
	enc.AddUint32("line", c.Line)
	enc.AddString("module", c.Module)
	return nil
}
