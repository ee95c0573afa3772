// Package pipeline contains objects for processing by a conveyor
package pipeline

import (
	"fmt"

	"github.com/iqoption/yabs-frames/common/format"
	"github.com/iqoption/yabs-frames/common/frames"
)

// Pipeline stage
type Stage interface {
	//Process the report
	//If return true then pipeline stop
	Process(report *format.Report) bool
}

// GroupFrames gives every frame its identity, the fingerprint of the raw frame
type GroupFrames struct{}

// SignatureAndSource takes the first in-app frame, or the top frame
type SignatureAndSource struct{}

func Run(stages []Stage, report *format.Report) {
	for _, stage := range stages {
		if stage.Process(report) {
			break
		}
	}
}

func (g *GroupFrames) Process(report *format.Report) bool {
	for i := range report.Frames {
		if i >= len(report.Fingerprints) {
			break
		}
		report.Frames[i] = report.Frames[i].WithRawId(report.Fingerprints[i])
	}

	return false
}

func (m *SignatureAndSource) Process(report *format.Report) bool {
	if len(report.Frames) == 0 {
		return false
	}

	frame := &report.Frames[0]
	for i := range report.Frames {
		if report.Frames[i].InApp {
			frame = &report.Frames[i]
			break
		}
	}

	report.Signature = frame.Name()
	report.Source = source(frame)
	return true
}

func source(frame *frames.Frame) string {
	file := ""
	if frame.Source != nil {
		file = *frame.Source
	}

	var line uint32
	if frame.Line != nil {
		line = *frame.Line
	}

	return fmt.Sprintf("%s:%d", file, line)
}
