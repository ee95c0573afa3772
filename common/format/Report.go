package format

import (
	"github.com/iqoption/yabs-frames/common/frames"
)

// Report is one processed stack trace. Fingerprints[i] belongs to Frames[i].
type Report struct {
	Id           string         `json:"id"`
	UserId       uint64         `json:"user_id"`
	BuildVersion string         `json:"build"`
	Platform     string         `json:"platform"`
	Signature    string         `json:"signature"`
	Source       string         `json:"source"`
	DateAdded    string         `json:"date_added"`
	Frames       []frames.Frame `json:"frames"`
	Fingerprints []string       `json:"fingerprints"`
	Rejected     int            `json:"rejected"`
}

// FrameDoc is how a frame is stored, keyed by its fingerprint
type FrameDoc struct {
	frames.Frame
	Fingerprint string `json:"fingerprint"`
	DateAdded   string `json:"date_added"`
}
