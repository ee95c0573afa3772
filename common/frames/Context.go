package frames

import "math"

type ContextLine struct {
	Number uint32 `json:"number"`
	Line   string `json:"line"`
}

// Context is a window of source lines around the frame's line.
// Before is nearest-first, After is nearest-first as well.
type Context struct {
	Before []ContextLine `json:"before"`
	Line   ContextLine   `json:"line"`
	After  []ContextLine `json:"after"`
}

func NewContextLine(number uint32, line string) ContextLine {
	return ContextLine{Number: number, Line: line}
}

type PreContextOrder int

const (
	// pre_context[0] is the line right above the frame line
	Reverse PreContextOrder = iota
	// pre_context is listed top to bottom, the last element is the nearest
	Forward
)

func ParsePreContextOrder(s string) (PreContextOrder, bool) {
	switch s {
	case "", "reverse":
		return Reverse, true
	case "forward":
		return Forward, true
	}
	return Reverse, false
}

func (o PreContextOrder) String() string {
	if o == Forward {
		return "forward"
	}
	return "reverse"
}

// Orient returns pre in nearest-first order. The input is never modified.
func Orient(pre []string, order PreContextOrder) []string {
	if order != Forward || len(pre) < 2 {
		return pre
	}

	out := make([]string, len(pre))
	for i, line := range pre {
		out[len(pre)-1-i] = line
	}
	return out
}

// Extract rebuilds the numbered source window of a frame.
// It returns nil when the frame carries no line text or no line number.
// pre must be nearest-first (see Orient). Lines that would be numbered
// below 1 are dropped together with everything further back.
func Extract(contextLine *string, lineno *uint32, pre, post []string) *Context {
	if contextLine == nil || lineno == nil {
		return nil
	}
	n := *lineno

	before := make([]ContextLine, 0, len(pre))
	for i, text := range pre {
		offset := uint64(i) + 1
		if offset >= uint64(n) {
			break
		}
		before = append(before, NewContextLine(n-uint32(offset), text))
	}

	after := make([]ContextLine, 0, len(post))
	for i, text := range post {
		number := uint64(n) + uint64(i) + 1
		if number > math.MaxUint32 {
			break
		}
		after = append(after, NewContextLine(uint32(number), text))
	}

	return &Context{
		Before: before,
		Line:   NewContextLine(n, *contextLine),
		After:  after,
	}
}
