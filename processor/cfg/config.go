package cfg

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/frames"
	log "github.com/sirupsen/logrus"
)

type Config interface {
	RabbitServer() string
	RabbitQueue() string
	RabbitPostExchange() string
	RabbitPostType() string
	ElasticUrl() string
	Memcache() []string
	RedisAddres() string
	RedisPassword() string
	LRUSize() int
	CacheTTL() time.Duration
	LogLevel() string
	Workers() int
	PreContextOrder() frames.PreContextOrder
	SignatureBlackList() []string
	MetricsAddr() string
}

var GlobalConfig Config
var GlobalConfigPath string

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

	err = jconf.validate()
	if err != nil {
		return nil, err
	}

	return &jconf, nil
}

func (cfg *JsonConfig) validate() error {
	if cfg.Rabbit == nil || len(cfg.Rabbit.Server) == 0 || len(cfg.Rabbit.Queue) == 0 {
		return errors.New("rabbit_cfg server and queue can't be empty")
	}

	if len(cfg.Elastic) == 0 {
		return errors.New("elastic can't be empty")
	}

	order, ok := frames.ParsePreContextOrder(cfg.PreContext)
	if !ok {
		return errors.Errorf("pre_context_order must be 'reverse' or 'forward', got %q", cfg.PreContext)
	}
	cfg.order = order

	if cfg.Cache == nil {
		cfg.Cache = &CacheCfg{}
	}

	if len(cfg.Cache.TTL) > 0 {
		ttl, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil || ttl <= 0 {
			return errors.Errorf("cache ttl must be a positive duration, got %q", cfg.Cache.TTL)
		}
		cfg.Cache.ttl = ttl
	}

	if cfg.Log == nil {
		cfg.Log = &LogCfg{Level: "info"}
	}

	if cfg.WorkersCount <= 0 {
		cfg.WorkersCount = runtime.NumCPU()
	}

	return nil
}
