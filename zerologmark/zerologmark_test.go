package zerologmark_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/ctxmark"
	"github.com/mpyw/ctxmark/zerologmark"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	buf.Reset()
	return m
}

func TestHook(t *testing.T) {
	tests := []struct {
		name string
		hook zerologmark.Hook
		key  string
		want string
	}{
		{
			name: "defaults",
			hook: zerologmark.Hook{},
			key:  zerologmark.DefaultKey,
			want: ">root>load",
		},
		{
			name: "custom key and separator",
			hook: zerologmark.Hook{Key: "scope", Separator: "/"},
			key:  "scope",
			want: "/root/load",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(tt.hook)

			logger.Info().Msg("outside")
			assert.NotContains(t, decode(t, &buf), tt.key)

			defer ctxmark.New("root", "hook.go", 1, "app").Release()
			defer ctxmark.New("load", "hook.go", 2, "app").Release()

			logger.Info().Msg("inside")
			m := decode(t, &buf)
			assert.Equal(t, tt.want, m[tt.key])
			assert.Equal(t, "inside", m["message"])
		})
	}
}

func TestStack(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	defer ctxmark.New("root", "stack.go", 7, "app/main").Release()
	logger.Error().Array("stack", zerologmark.Stack()).Msg("failed")

	m := decode(t, &buf)
	stack, ok := m["stack"].([]any)
	require.True(t, ok)
	require.Len(t, stack, 1)
	assert.Equal(t, map[string]any{
		"name":   "root",
		"file":   "stack.go",
		"line":   float64(7),
		"module": "app/main",
	}, stack[0])
}
