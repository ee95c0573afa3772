package pipeline

import (
	"regexp"

	"github.com/iqoption/yabs-frames/common/format"
	log "github.com/sirupsen/logrus"
)

// Regular Expression Descent: the signature is the first frame whose name
// matches none of the black list
type Rx struct {
	Regexps []*regexp.Regexp
}

func (r *Rx) Process(report *format.Report) bool {
	if len(r.Regexps) == 0 {
		// to next stage
		return false
	}

	if len(report.Frames) == 0 {
		// go to next stage
		return false
	}

	for i := range report.Frames {
		frame := &report.Frames[i]
		name := frame.Name()

		isMatch := false
		for _, rx := range r.Regexps {
			if rx.MatchString(name) {
				isMatch = true
				break
			}
		}
		if !isMatch {
			report.Signature = name
			report.Source = source(frame)
			return true
		}
	}

	report.Signature = report.Frames[0].Name()
	report.Source = source(&report.Frames[0])
	return true
}

func NewRx(regs []string) *Rx {
	var rxSlice []*regexp.Regexp
	for _, reg := range regs {
		rx, err := regexp.Compile(reg)
		log.WithField("regexp", reg).
			Debug("Rx stage: compile regexp")
		if err == nil {
			rxSlice = append(rxSlice, rx)
		} else {
			log.WithError(err).
				Error("Can't compile regular expression")
		}
	}

	return &Rx{
		Regexps: rxSlice,
	}
}
