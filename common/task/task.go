package task

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	PROCESS_FRAMES = 1 << iota
)

// Frames carries one report worth of language tagged raw frames,
// see langs.Decode for the frame envelope.
type Frames struct {
	Type     uint              `json:"type"`
	ReportId string            `json:"report_id"`
	Info     json.RawMessage   `json:"info,omitempty"`
	Frames   []json.RawMessage `json:"frames"`
	Time     string            `json:"time,omitempty"`
}

func FromJson(data []byte) interface{} {
	type Test struct {
		Type uint `json:"type"`
	}

	var t Test
	err := json.Unmarshal(data, &t)
	if err != nil {
		log.WithError(err).Error("Can't parse task type")
		return nil
	}

	switch t.Type {
	case PROCESS_FRAMES:
		var f Frames
		err := json.Unmarshal(data, &f)
		if err != nil {
			log.WithError(err).Error("Can't parse frames task")
			return nil
		}

		if len(f.Time) == 0 {
			f.Time = getTimeStamp()
		}

		return &f
	default:
		log.WithField("type", t.Type).Warning("Unknown task type")
		return nil
	}
}

func CreateFramesTask(reportId string, info json.RawMessage, frames []json.RawMessage) *Frames {
	return &Frames{Type: PROCESS_FRAMES,
		ReportId: reportId,
		Info:     info,
		Frames:   frames,
		Time:     getTimeStamp()}
}

func getTimeStamp() string {
	t := time.Now()
	return t.Format(time.RFC3339)
}
