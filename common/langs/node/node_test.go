package node

import (
	"encoding/json"
	"testing"

	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func num(n uint32) *uint32 { return &n }

func renderFrame() *RawNodeFrame {
	return &RawNodeFrame{
		Filename:    "app.js",
		Function:    "render",
		Lineno:      num(10),
		ContextLine: str("return x;"),
		PreContext:  []string{"let x=1;"},
		PostContext: []string{"}"},
	}
}

func TestFrameId_KnownAnswer(t *testing.T) {
	t.Parallel()

	empty := &RawNodeFrame{}
	assert.Equal(t, "ec2d57691d9b2d40182ac565032054b7d784ba96b18bcb5be0bb4e70e3fb041e"+
		"ff582c8af66ee50256539f2181d7f9e53627c0189da7e75a4d5ef10ea93b20b3", empty.FrameId())

	assert.Equal(t, "249b538ea2adfeddc6f2d48dd42426601ccb69ad31dce179b1df75400cad9aab"+
		"1d42ddf609c37a667f751df4ae10e45d613eaa55cbc04fd8c3b764bae032bed2", renderFrame().FrameId())
}

func TestFrameId_Deterministic(t *testing.T) {
	t.Parallel()

	f := renderFrame()
	id := f.FrameId()
	assert.Len(t, id, 128)
	assert.Regexp(t, "^[0-9a-f]+$", id)
	for i := 0; i < 10; i++ {
		assert.Equal(t, id, f.FrameId())
		assert.Equal(t, id, renderFrame().FrameId())
	}
}

func TestFrameId_IgnoresClassification(t *testing.T) {
	t.Parallel()

	base := renderFrame().FrameId()

	inApp := renderFrame()
	inApp.InApp = true
	assert.Equal(t, base, inApp.FrameId())

	col := renderFrame()
	col.Colno = num(42)
	assert.Equal(t, base, col.FrameId())

	ordered := renderFrame().WithPreContextOrder(frames.Forward)
	assert.Equal(t, base, ordered.FrameId())
}

func TestFrameId_Sensitive(t *testing.T) {
	t.Parallel()

	base := renderFrame().FrameId()

	tests := []struct {
		name   string
		change func(f *RawNodeFrame)
	}{
		{"context line", func(f *RawNodeFrame) { f.ContextLine = str("return y;") }},
		{"no context line", func(f *RawNodeFrame) { f.ContextLine = nil }},
		{"filename", func(f *RawNodeFrame) { f.Filename = "lib.js" }},
		{"function", func(f *RawNodeFrame) { f.Function = "draw" }},
		{"lineno", func(f *RawNodeFrame) { f.Lineno = num(11) }},
		{"module", func(f *RawNodeFrame) { f.Module = str("app") }},
		{"pre context", func(f *RawNodeFrame) { f.PreContext = []string{"let x=2;"} }},
		{"post context", func(f *RawNodeFrame) { f.PostContext = []string{"};"} }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := renderFrame()
			tt.change(f)
			assert.NotEqual(t, base, f.FrameId())
		})
	}
}

func TestFrameId_MissingLinenoIsZero(t *testing.T) {
	t.Parallel()

	missing := renderFrame()
	missing.Lineno = nil

	zero := renderFrame()
	zero.Lineno = num(0)

	assert.Equal(t, zero.FrameId(), missing.FrameId())
}

func TestContext_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := renderFrame().Context()
	require.NotNil(t, ctx)
	assert.Equal(t, frames.Context{
		Before: []frames.ContextLine{{Number: 9, Line: "let x=1;"}},
		Line:   frames.ContextLine{Number: 10, Line: "return x;"},
		After:  []frames.ContextLine{{Number: 11, Line: "}"}},
	}, *ctx)
}

func TestContext_ForwardOrder(t *testing.T) {
	t.Parallel()

	f := renderFrame()
	f.PreContext = []string{"function render() {", "let x=1;"}

	reverse := f.Context()
	require.NotNil(t, reverse)
	assert.Equal(t, []frames.ContextLine{{Number: 9, Line: "function render() {"}, {Number: 8, Line: "let x=1;"}}, reverse.Before)

	forward := f.WithPreContextOrder(frames.Forward).Context()
	require.NotNil(t, forward)
	assert.Equal(t, []frames.ContextLine{{Number: 9, Line: "let x=1;"}, {Number: 8, Line: "function render() {"}}, forward.Before)
}

func TestToCanonicalFrame(t *testing.T) {
	t.Parallel()

	raw := renderFrame()
	raw.Colno = num(5)
	raw.InApp = true
	f := raw.ToCanonicalFrame()

	assert.Equal(t, "", f.RawId)
	assert.Equal(t, "render", f.MangledName)
	require.NotNil(t, f.ResolvedName)
	assert.Equal(t, "render", *f.ResolvedName)
	assert.True(t, f.Resolved)
	assert.Nil(t, f.ResolveFailure)
	require.NotNil(t, f.Source)
	assert.Equal(t, "app.js", *f.Source)
	require.NotNil(t, f.Line)
	assert.Equal(t, uint32(10), *f.Line)
	assert.Nil(t, f.Column)
	assert.True(t, f.InApp)
	assert.Equal(t, "javascript", f.Lang)
	assert.Nil(t, f.JunkDrawer)
	require.NotNil(t, f.Context)
	assert.Equal(t, uint32(10), f.Context.Line.Number)
}

func TestToCanonicalFrame_Minified(t *testing.T) {
	t.Parallel()

	raw := &RawNodeFrame{Filename: "bundle.min.js", Function: "a"}
	f := raw.ToCanonicalFrame()

	assert.Nil(t, f.Line)
	assert.Nil(t, f.Context)
	assert.False(t, f.InApp)
	assert.Equal(t, "a", f.Name())
}

func TestDecode_Defaults(t *testing.T) {
	t.Parallel()

	var raw RawNodeFrame
	err := json.Unmarshal([]byte(`{"filename":"app.js","function":"render"}`), &raw)
	require.NoError(t, err)

	assert.False(t, raw.InApp)
	assert.Nil(t, raw.Lineno)
	assert.Nil(t, raw.Module)
	assert.Empty(t, raw.PreContext)
	assert.Empty(t, raw.PostContext)
}

var _ frames.Adapter = (*RawNodeFrame)(nil)
