package format

import (
	"encoding/json"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Info describes the client that sent the report
type Info struct {
	Version  string `json:"version"`
	Platform string `json:"platform"`
	Runtime  string `json:"runtime"`
	UserId   string `json:"userid"`
}

func InfoFromJson(data []byte) (*Info, error) {
	var i Info
	if len(data) == 0 {
		return &i, nil
	}

	err := json.Unmarshal(data, &i)
	if err != nil {
		log.WithError(err).Error("Can't parse info")
		return nil, err
	}
	return &i, nil
}

func (i *Info) GetUserId() uint64 {
	var userId uint64 = 0

	if (len(i.UserId) != 0) && (i.UserId != "-1") {
		var err error = nil
		userId, err = strconv.ParseUint(i.UserId, 10, 64)
		if err != nil {
			log.WithError(err).Error("Can't convert user id to uint64")
		}
	}
	return userId
}
