// Package node holds the raw stack frame sent by node.js clients
package node

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"

	"github.com/iqoption/yabs-frames/common/frames"
)

const (
	Platform = "node:javascript"
	Lang     = "javascript"
)

// RawNodeFrame function names arrive already readable, source maps are
// applied on the client before sending.
type RawNodeFrame struct {
	Filename    string   `json:"filename"`
	Function    string   `json:"function"`
	Lineno      *uint32  `json:"lineno,omitempty"`
	Colno       *uint32  `json:"colno,omitempty"`
	Module      *string  `json:"module,omitempty"`
	InApp       bool     `json:"in_app"`
	ContextLine *string  `json:"context_line,omitempty"`
	PreContext  []string `json:"pre_context,omitempty"`
	PostContext []string `json:"post_context,omitempty"`

	order frames.PreContextOrder
}

// WithPreContextOrder returns a copy that reads PreContext in the given order
func (r RawNodeFrame) WithPreContextOrder(o frames.PreContextOrder) *RawNodeFrame {
	r.order = o
	return &r
}

// FrameId never looks at in_app and colno, they must not split groups
func (r *RawNodeFrame) FrameId() string {
	h := sha512.New()
	if r.ContextLine != nil {
		h.Write([]byte(*r.ContextLine))
	}
	h.Write([]byte(r.Filename))
	h.Write([]byte(r.Function))

	var lineno [4]byte
	if r.Lineno != nil {
		binary.BigEndian.PutUint32(lineno[:], *r.Lineno)
	}
	h.Write(lineno[:])

	if r.Module != nil {
		h.Write([]byte(*r.Module))
	}
	for _, line := range r.PreContext {
		h.Write([]byte(line))
	}
	for _, line := range r.PostContext {
		h.Write([]byte(line))
	}

	return hex.EncodeToString(h.Sum(nil))
}

func (r *RawNodeFrame) Context() *frames.Context {
	return frames.Extract(r.ContextLine,
		r.Lineno,
		frames.Orient(r.PreContext, r.order),
		r.PostContext)
}

// Column is not propagated for node frames.
func (r *RawNodeFrame) ToCanonicalFrame() frames.Frame {
	name := r.Function
	source := r.Filename

	var line *uint32
	if r.Lineno != nil {
		l := *r.Lineno
		line = &l
	}

	return frames.Frame{
		MangledName:  r.Function,
		ResolvedName: &name,
		Line:         line,
		Column:       nil,
		Source:       &source,
		InApp:        r.InApp,
		Lang:         Lang,
		Resolved:     true,
		Context:      r.Context(),
	}
}
