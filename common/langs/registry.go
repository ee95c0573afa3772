package langs

import (
	"encoding/json"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/iqoption/yabs-frames/common/langs/node"
)

func init() {
	Register(node.Platform, decodeNode)
}

func decodeNode(data []byte, o Options) (frames.Adapter, error) {
	var raw node.RawNodeFrame
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, errors.WrapPrefix(err, "can't parse node frame", 0)
	}

	return raw.WithPreContextOrder(o.PreContextOrder), nil
}
