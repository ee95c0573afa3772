// Package frames contains the canonical, language independent stack frame
package frames

// Frame is produced once per raw frame by a language adapter and is not
// changed afterwards. RawId stays empty until the grouping stage fills it.
type Frame struct {
	RawId          string                 `json:"raw_id"`
	MangledName    string                 `json:"mangled_name"`
	Line           *uint32                `json:"line"`
	Column         *uint32                `json:"column"`
	Source         *string                `json:"source"`
	InApp          bool                   `json:"in_app"`
	ResolvedName   *string                `json:"resolved_name"`
	Lang           string                 `json:"lang"`
	Resolved       bool                   `json:"resolved"`
	ResolveFailure *string                `json:"resolve_failure"`
	JunkDrawer     map[string]interface{} `json:"junk_drawer"`
	Context        *Context               `json:"context"`
}

// Adapter is implemented once per source language by its raw frame type
type Adapter interface {
	ToCanonicalFrame() Frame
	// FrameId is the content fingerprint of the raw frame
	FrameId() string
}

// WithRawId returns a copy of the frame carrying the given identity
func (f Frame) WithRawId(id string) Frame {
	f.RawId = id
	return f
}

// Name is what the frame is displayed as
func (f *Frame) Name() string {
	if f.ResolvedName != nil && *f.ResolvedName != "" {
		return *f.ResolvedName
	}
	return f.MangledName
}
