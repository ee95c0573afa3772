// Package langs dispatches language tagged raw frames to their adapters
package langs

import (
	"encoding/json"
	"strings"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/iqoption/yabs-frames/common/utils"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrNoPlatform      = errors.New("frame has no platform")
)

type Options struct {
	PreContextOrder frames.PreContextOrder
}

// Decoder builds the adapter of one language from the envelope bytes
type Decoder func(data []byte, o Options) (frames.Adapter, error)

var decoders = map[string]Decoder{}

// Register must be called from init only
func Register(platform string, d Decoder) {
	decoders[platform] = d
}

func Platforms() []string {
	p := make([]string, 0, len(decoders))
	for k := range decoders {
		p = append(p, k)
	}
	return p
}

// Decode reads {"platform": "...", ...frame fields}
func Decode(data []byte, o Options) (frames.Adapter, error) {
	var envelope struct {
		Platform string `json:"platform"`
	}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, errors.WrapPrefix(err, "can't parse frame envelope", 0)
	}

	platform := strings.ToLower(utils.Trim(envelope.Platform))
	if platform == "" {
		return nil, ErrNoPlatform
	}

	decode, ok := decoders[platform]
	if !ok {
		return nil, errors.WrapPrefix(ErrUnknownPlatform, platform, 0)
	}

	return decode(data, o)
}

// DecodeAll keeps going on bad frames, errs[i] belongs to data[i]
func DecodeAll(data []json.RawMessage, o Options) ([]frames.Adapter, []error) {
	adapters := make([]frames.Adapter, len(data))
	errs := make([]error, len(data))

	for i, raw := range data {
		adapters[i], errs[i] = Decode(raw, o)
	}

	return adapters, errs
}
