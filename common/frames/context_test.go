package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func num(n uint32) *uint32 { return &n }

func TestExtract_NoContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Extract(nil, num(3), []string{"a"}, []string{"b"}))
	assert.Nil(t, Extract(str("x"), nil, []string{"a"}, []string{"b"}))
	assert.Nil(t, Extract(nil, nil, nil, nil))
}

func TestExtract_Window(t *testing.T) {
	t.Parallel()

	ctx := Extract(str("return x;"), num(10), []string{"let x=1;"}, []string{"}"})
	require.NotNil(t, ctx)

	assert.Equal(t, Context{
		Before: []ContextLine{{Number: 9, Line: "let x=1;"}},
		Line:   ContextLine{Number: 10, Line: "return x;"},
		After:  []ContextLine{{Number: 11, Line: "}"}},
	}, *ctx)
}

func TestExtract_NearestFirst(t *testing.T) {
	t.Parallel()

	ctx := Extract(str("c"), num(5), []string{"b", "a"}, []string{"d", "e", "f"})
	require.NotNil(t, ctx)

	assert.Equal(t, []ContextLine{{4, "b"}, {3, "a"}}, ctx.Before)
	assert.Equal(t, []ContextLine{{6, "d"}, {7, "e"}, {8, "f"}}, ctx.After)
}

func TestExtract_Underflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lineno uint32
		pre    []string
		want   []ContextLine
	}{
		{"first line", 1, []string{"a", "b"}, []ContextLine{}},
		{"second line", 2, []string{"a", "b", "c"}, []ContextLine{{1, "a"}}},
		{"line zero", 0, []string{"a"}, []ContextLine{}},
		{"fits exactly", 3, []string{"a", "b"}, []ContextLine{{2, "a"}, {1, "b"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := Extract(str("x"), num(tt.lineno), tt.pre, nil)
			require.NotNil(t, ctx)
			assert.Equal(t, tt.want, ctx.Before)
			for _, l := range ctx.Before {
				assert.GreaterOrEqual(t, l.Number, uint32(1))
			}
		})
	}
}

func TestExtract_Overflow(t *testing.T) {
	t.Parallel()

	ctx := Extract(str("x"), num(^uint32(0)-1), nil, []string{"a", "b", "c"})
	require.NotNil(t, ctx)
	assert.Equal(t, []ContextLine{{^uint32(0), "a"}}, ctx.After)
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	ctx := Extract(str("x"), num(7), nil, nil)
	require.NotNil(t, ctx)
	assert.Empty(t, ctx.Before)
	assert.Empty(t, ctx.After)
	assert.Equal(t, ContextLine{7, "x"}, ctx.Line)
}

func TestOrient(t *testing.T) {
	t.Parallel()

	pre := []string{"top", "middle", "nearest"}

	assert.Equal(t, pre, Orient(pre, Reverse))
	assert.Equal(t, []string{"nearest", "middle", "top"}, Orient(pre, Forward))
	// input untouched
	assert.Equal(t, []string{"top", "middle", "nearest"}, pre)
	assert.Nil(t, Orient(nil, Forward))

	ctx := Extract(str("x"), num(10), Orient(pre, Forward), nil)
	require.NotNil(t, ctx)
	assert.Equal(t, []ContextLine{{9, "nearest"}, {8, "middle"}, {7, "top"}}, ctx.Before)
}

func TestParsePreContextOrder(t *testing.T) {
	t.Parallel()

	o, ok := ParsePreContextOrder("")
	assert.True(t, ok)
	assert.Equal(t, Reverse, o)

	o, ok = ParsePreContextOrder("forward")
	assert.True(t, ok)
	assert.Equal(t, Forward, o)
	assert.Equal(t, "forward", o.String())

	_, ok = ParsePreContextOrder("sideways")
	assert.False(t, ok)
}
