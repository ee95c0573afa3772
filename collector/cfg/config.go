package cfg

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/frames"
	log "github.com/sirupsen/logrus"
)

const DefaultMaxFrames = 1024

type Config interface {
	Port() uint
	Host() string
	RabbitServer() string
	RabbitQueue() string
	LogLevel() string
	MaxFrames() int
	PreContextOrder() frames.PreContextOrder

	// monitoring
	MonitoringEnable() bool
}

var GlobalConfigMutex sync.Mutex
var GlobalConfig Config
var GlobalConfigPath string

// Current returns the configuration installed by the last reload
func Current() Config {
	GlobalConfigMutex.Lock()
	defer GlobalConfigMutex.Unlock()
	return GlobalConfig
}

func FromJson(pathTo string) (Config, error) {
	file, err := os.Open(pathTo)
	if err != nil {
		log.WithError(err).Error("Get config failed")
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	var jconf JsonConfig
	err = decoder.Decode(&jconf)
	if err != nil {
		log.WithError(err).Error("Error at cfg parsing")
		return nil, err
	}

	if jconf.Server == nil || jconf.Server.Port == 0 {
		return nil, errors.New("The web server port is not set")
	}

	if jconf.Rabbit == nil || len(jconf.Rabbit.Queue) == 0 {
		return nil, errors.New("The rabbit queue is not set")
	}

	order, ok := frames.ParsePreContextOrder(jconf.PreContext)
	if !ok {
		return nil, errors.Errorf("Unknown pre_context_order %q", jconf.PreContext)
	}
	jconf.order = order

	if jconf.Log == nil {
		jconf.Log = &LogCfg{Level: "info"}
	}

	if jconf.Monitoring == nil {
		jconf.Monitoring = &MonitoringCfg{}
	}

	if jconf.Frames <= 0 {
		jconf.Frames = DefaultMaxFrames
	}

	return &jconf, nil
}
