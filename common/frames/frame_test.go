package frames

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_WithRawId(t *testing.T) {
	f := Frame{MangledName: "render"}
	g := f.WithRawId("abc")

	assert.Equal(t, "", f.RawId)
	assert.Equal(t, "abc", g.RawId)
	assert.Equal(t, "render", g.MangledName)
}

func TestFrame_Name(t *testing.T) {
	f := Frame{MangledName: "_Z6renderv"}
	assert.Equal(t, "_Z6renderv", f.Name())

	f.ResolvedName = str("render()")
	assert.Equal(t, "render()", f.Name())
}

func TestFrame_JSON(t *testing.T) {
	f := Frame{
		MangledName: "render",
		Line:        num(10),
		Lang:        "javascript",
		Context:     Extract(str("x"), num(10), nil, nil),
	}

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "", m["raw_id"])
	assert.Equal(t, "render", m["mangled_name"])
	assert.Equal(t, float64(10), m["line"])
	assert.Nil(t, m["column"])
	assert.Nil(t, m["resolve_failure"])
	assert.Nil(t, m["junk_drawer"])
	assert.Contains(t, m, "context")
}
