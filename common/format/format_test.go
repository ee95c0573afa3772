package format

import (
	"encoding/json"
	"testing"

	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoFromJson(t *testing.T) {
	i, err := InfoFromJson([]byte(`{"version":"1.2.3","platform":"node","userid":"42"}`))
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", i.Version)
	assert.Equal(t, uint64(42), i.GetUserId())

	i, err = InfoFromJson(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), i.GetUserId())

	_, err = InfoFromJson([]byte(`[`))
	assert.Error(t, err)
}

func TestGetUserId(t *testing.T) {
	assert.Equal(t, uint64(0), (&Info{UserId: "-1"}).GetUserId())
	assert.Equal(t, uint64(0), (&Info{UserId: "abc"}).GetUserId())
	assert.Equal(t, uint64(7), (&Info{UserId: "7"}).GetUserId())
}

func TestFrameDoc_JSON(t *testing.T) {
	doc := FrameDoc{
		Frame:       frames.Frame{RawId: "abc", MangledName: "render", Lang: "javascript"},
		Fingerprint: "abc",
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "render", m["mangled_name"])
	assert.Equal(t, "abc", m["fingerprint"])
	assert.Equal(t, "abc", m["raw_id"])
}
