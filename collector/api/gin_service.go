package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iqoption/yabs-frames/collector/cfg"
	"github.com/iqoption/yabs-frames/collector/service"
	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/iqoption/yabs-frames/common/langs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

type BaseReply struct {
	Status string `json:"status"`
	Id     string `json:"id,omitempty"`
}

// FramesQueue hands uploaded frames over to the processor
type FramesQueue interface {
	AddFrames(reportId string, info json.RawMessage, frames []json.RawMessage) error
	Close() error
}

type GinCollectorService struct {
	engine   *gin.Engine
	conf     func() cfg.Config
	service  FramesQueue
	registry *prometheus.Registry
	metrics  *Metrics
}

type FramesRequest struct {
	ReportId string            `json:"report_id"`
	Info     json.RawMessage   `json:"info"`
	Frames   []json.RawMessage `json:"frames"`
}

type FingerprintReply struct {
	Fingerprint string        `json:"fingerprint,omitempty"`
	Frame       *frames.Frame `json:"frame,omitempty"`
	Error       string        `json:"error,omitempty"`
}

func (m *GinCollectorService) Init() error {
	collector, err := service.NewCollector(cfg.Current())
	if err != nil {
		return err
	}

	log.WithField("platforms", langs.Platforms()).Info("Supported platforms")
	m.setup(cfg.Current, collector, prometheus.NewRegistry())
	return nil
}

// setup takes a getter so handlers see the configuration after SIGHUP
func (m *GinCollectorService) setup(conf func() cfg.Config, queue FramesQueue, registry *prometheus.Registry) {
	m.conf = conf
	m.service = queue
	m.registry = registry
	m.metrics = NewMetrics(registry)

	m.engine = gin.New()
	m.engine.Use(gin.Recovery(), m.metrics.Middleware())

	m.applyRoutes()
}

func (m *GinCollectorService) setSuccessStatus(c *gin.Context, id string) {
	c.JSON(http.StatusOK, &BaseReply{Status: "success", Id: id})
}

func (m *GinCollectorService) setServerError(descr string, c *gin.Context) {
	rMsg := &BaseReply{Status: fmt.Sprintf("error: %s", descr)}
	c.JSON(http.StatusInternalServerError, rMsg)
}

func (m *GinCollectorService) setBadRequest(descr string, c *gin.Context) {
	rMsg := &BaseReply{Status: fmt.Sprintf("error: %s", descr)}
	c.JSON(http.StatusBadRequest, rMsg)
}

func (m *GinCollectorService) Start() error {
	conf := m.conf()
	addres := fmt.Sprintf("%s:%d", conf.Host(), conf.Port())
	log.WithField("address", addres).Info("Run on")
	return m.engine.Run(addres)
}

func (m *GinCollectorService) Close() error {
	return m.service.Close()
}

func (m *GinCollectorService) applyRoutes() {
	m.engine.POST("/frames", m.PostFrames())
	m.engine.POST("/fingerprint", m.PostFingerprint())

	if m.conf().MonitoringEnable() {
		m.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})))
	}
}

func (m *GinCollectorService) readFrames(c *gin.Context) (*FramesRequest, bool) {
	var req FramesRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		log.WithError(err).Debug("Invalid frames request")
		m.setBadRequest("Invalid json", c)
		return nil, false
	}

	if len(req.Frames) == 0 {
		m.setBadRequest("Field frames can't be empty", c)
		return nil, false
	}

	maxFrames := m.conf().MaxFrames()
	if len(req.Frames) > maxFrames {
		m.setBadRequest(fmt.Sprintf("Too many frames, max %d", maxFrames), c)
		return nil, false
	}

	if len(req.Info) > 0 {
		var info map[string]interface{}
		if json.Unmarshal(req.Info, &info) != nil {
			m.setBadRequest("Invalid info format. Need json object", c)
			return nil, false
		}
	}

	return &req, true
}

func (m *GinCollectorService) PostFrames() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := m.readFrames(c)
		if !ok {
			return
		}

		if len(req.ReportId) == 0 {
			req.ReportId = uuid.NewV4().String()
		}

		err := m.service.AddFrames(req.ReportId, req.Info, req.Frames)
		if err != nil {
			log.WithFields(log.Fields{
				"report": req.ReportId,
				"error":  err,
			}).Error("Can't add frames task")
			m.setServerError("Can't add new task to process frames", c)
			return
		}

		m.metrics.frames.Add(float64(len(req.Frames)))
		log.WithFields(log.Fields{
			"report": req.ReportId,
			"frames": len(req.Frames),
		}).Debug("Send frames to processor")
		m.setSuccessStatus(c, req.ReportId)
	}
}

// PostFingerprint answers right away, nothing is queued or stored
func (m *GinCollectorService) PostFingerprint() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := m.readFrames(c)
		if !ok {
			return
		}

		opts := langs.Options{PreContextOrder: m.conf().PreContextOrder()}
		adapters, errs := langs.DecodeAll(req.Frames, opts)

		reply := make([]FingerprintReply, len(adapters))
		for i, a := range adapters {
			if errs[i] != nil {
				reply[i].Error = errs[i].Error()
				continue
			}

			frame := a.ToCanonicalFrame()
			reply[i].Fingerprint = a.FrameId()
			reply[i].Frame = &frame
		}

		c.JSON(http.StatusOK, reply)
	}
}
