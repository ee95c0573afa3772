package cfg

import "github.com/iqoption/yabs-frames/common/frames"

type WebServerCfg struct {
	Port uint   `json:"port"`
	Host string `json:"host"`
}

type RabbitCfg struct {
	Server string `json:"server"`
	Queue  string `json:"queue"`
}

type LogCfg struct {
	Level string `json:"level"`
}

type MonitoringCfg struct {
	Enable bool `json:"enable"`
}

type JsonConfig struct {
	Server     *WebServerCfg  `json:"web_server"`
	Rabbit     *RabbitCfg     `json:"rabbit_cfg"`
	Log        *LogCfg        `json:"log"`
	Monitoring *MonitoringCfg `json:"monitoring"`
	Frames     int            `json:"max_frames"`
	PreContext string         `json:"pre_context_order"`

	order frames.PreContextOrder
}

func (cfg *JsonConfig) Port() uint {
	return cfg.Server.Port
}

func (cfg *JsonConfig) Host() string {
	return cfg.Server.Host
}

func (cfg *JsonConfig) RabbitServer() string {
	return cfg.Rabbit.Server
}

func (cfg *JsonConfig) RabbitQueue() string {
	return cfg.Rabbit.Queue
}

func (cfg *JsonConfig) LogLevel() string {
	return cfg.Log.Level
}

func (cfg *JsonConfig) MaxFrames() int {
	return cfg.Frames
}

func (cfg *JsonConfig) PreContextOrder() frames.PreContextOrder {
	return cfg.order
}

func (cfg *JsonConfig) MonitoringEnable() bool {
	return cfg.Monitoring.Enable
}
