package cfg

import (
	"time"

	"github.com/iqoption/yabs-frames/common/frames"
)

type RabbitCfg struct {
	Server   string `json:"server"`
	Queue    string `json:"queue"`
	Exchange string `json:"post-exchange"`
	Type     string `json:"post-type"`
}

type RedisCfg struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type CacheCfg struct {
	Memcached []string  `json:"memcache"`
	Redis     *RedisCfg `json:"redis"`
	LRU       int       `json:"lru_size"`
	TTL       string    `json:"ttl"`

	ttl time.Duration
}

type LogCfg struct {
	Level string `json:"level"`
}

type JsonConfig struct {
	Rabbit       *RabbitCfg `json:"rabbit_cfg"`
	Cache        *CacheCfg  `json:"cache"`
	Elastic      string     `json:"elastic"`
	Log          *LogCfg    `json:"log"`
	WorkersCount int        `json:"workers"`
	PreContext   string     `json:"pre_context_order"`
	BlackList    []string   `json:"signature_blacklist"`
	Metrics      string     `json:"metrics_addr"`

	order frames.PreContextOrder
}

func (cfg *JsonConfig) RabbitServer() string {
	return cfg.Rabbit.Server
}

func (cfg *JsonConfig) RabbitQueue() string {
	return cfg.Rabbit.Queue
}

func (cfg *JsonConfig) RabbitPostExchange() string {
	return cfg.Rabbit.Exchange
}

func (cfg *JsonConfig) RabbitPostType() string {
	return cfg.Rabbit.Type
}

func (cfg *JsonConfig) ElasticUrl() string {
	return cfg.Elastic
}

func (cfg *JsonConfig) Memcache() []string {
	return cfg.Cache.Memcached
}

func (cfg *JsonConfig) RedisAddres() string {
	if cfg.Cache.Redis == nil {
		return ""
	}
	return cfg.Cache.Redis.Address
}

func (cfg *JsonConfig) RedisPassword() string {
	if cfg.Cache.Redis == nil {
		return ""
	}
	return cfg.Cache.Redis.Password
}

func (cfg *JsonConfig) LRUSize() int {
	return cfg.Cache.LRU
}

func (cfg *JsonConfig) CacheTTL() time.Duration {
	return cfg.Cache.ttl
}

func (cfg *JsonConfig) LogLevel() string {
	return cfg.Log.Level
}

func (cfg *JsonConfig) Workers() int {
	return cfg.WorkersCount
}

func (cfg *JsonConfig) PreContextOrder() frames.PreContextOrder {
	return cfg.order
}

func (cfg *JsonConfig) SignatureBlackList() []string {
	return cfg.BlackList
}

func (cfg *JsonConfig) MetricsAddr() string {
	return cfg.Metrics
}
