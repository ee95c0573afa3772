package service

import (
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/data/base"
	"github.com/iqoption/yabs-frames/common/format"
	"github.com/iqoption/yabs-frames/common/langs"
	"github.com/iqoption/yabs-frames/common/task"
	"github.com/iqoption/yabs-frames/processor/cfg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

const (
	SIGHUP  = syscall.SIGHUP
	SIGTERM = syscall.SIGTERM
)

var errInvalidTask = errors.New("invalid task")

type RabbitClient struct {
	connection  *amqp.Connection
	taskChannel *amqp.Channel
	taskQueue   amqp.Queue
	messages    <-chan amqp.Delivery
	postChannel *amqp.Channel
}

type ProcessorService struct {
	FramesProcessor
	config     cfg.Config
	rabbit     *RabbitClient
	sig        <-chan os.Signal
	repository base.Storage
	registry   *prometheus.Registry
}

func newRabbitClient(conf cfg.Config) (*RabbitClient, error) {
	conn, err := amqp.Dial(conf.RabbitServer())
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to connect to RabbitMQ", 0)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to open a task channel", 0)
	}

	q, err := ch.QueueDeclare(
		conf.RabbitQueue(),
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to declare a task queue", 0)
	}

	err = ch.Qos(
		1,
		0,
		false,
	)
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to set QoS", 0)
	}

	msgs, err := ch.Consume(
		q.Name, // taskQueue
		"",     // consumer
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to register a consumer", 0)
	}

	return &RabbitClient{connection: conn,
		taskChannel: ch,
		taskQueue:   q,
		messages:    msgs,
	}, nil
}

func newCache(conf cfg.Config) (base.Cashe, error) {
	if len(conf.Memcache()) > 0 {
		return base.NewMemcache(conf.Memcache(), conf.CacheTTL())
	}

	if len(conf.RedisAddres()) > 0 {
		return base.NewRedis(conf.RedisAddres(),
			conf.RedisPassword(), conf.CacheTTL())
	}

	return base.NewLRU(conf.LRUSize(), conf.CacheTTL())
}

func (p *ProcessorService) Init(config cfg.Config) error {
	p.config = config

	rabbit, err := newRabbitClient(p.config)
	if err != nil {
		return err
	}
	p.rabbit = rabbit

	err = p.createPostProcessingExchange()
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, SIGHUP, SIGTERM)
	p.sig = sig

	cache, err := newCache(p.config)
	if err != nil {
		log.WithError(err).Error("Can't create cache")
		return err
	}

	rep, err := base.NewRepository(p.config.ElasticUrl(), cache)
	if err != nil {
		log.WithError(err).Error("Can't create repository")
		return err
	}
	p.repository = rep

	p.registry = prometheus.NewRegistry()
	p.registry.MustRegister(collectors.NewGoCollector())
	p.initFramesProcessor(p.config, p.repository, NewMetrics(p.registry))
	log.WithFields(log.Fields{
		"platforms": langs.Platforms(),
		"order":     p.config.PreContextOrder(),
	}).Info("Frames processor is ready")
	p.serveMetrics()

	return nil
}

func (p *ProcessorService) serveMetrics() {
	addr := p.config.MetricsAddr()
	if len(addr) == 0 {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
	go func() {
		log.WithField("address", addr).Info("Metrics on")
		err := http.ListenAndServe(addr, mux)
		if err != nil {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()
}

func (p *ProcessorService) Loop() {
	for {
		select {
		case msg, ok := <-p.rabbit.messages:
			if !ok {
				log.Error("Task channel closed")
				return
			}

			err := p.handleTask(msg.Body)
			switch {
			case err == nil:
				msg.Ack(false)
			case errors.Is(err, errInvalidTask):
				msg.Nack(false, false)
			default:
				log.WithError(err).Error("Can't handle task")
				msg.Nack(false, true)
			}
		case sig := <-p.sig:
			if p.handleSignal(sig) {
				return
			}
		}
	}
}

func (p *ProcessorService) handleTask(message []byte) error {
	t := task.FromJson(message)
	if t == nil {
		return errInvalidTask
	}

	switch t := t.(type) {
	case *task.Frames:
		r, err := p.handleFrames(t)
		if err != nil {
			return err
		}
		p.sendNext(r)
	}

	return nil
}

// handleSignal returns true when the service has to stop
func (p *ProcessorService) handleSignal(sig os.Signal) bool {
	log.WithField("signal", sig.String()).
		Info("Catch")

	switch sig {
	case SIGHUP:
		p.reloadConfiguration()
	case SIGTERM:
		p.close()
		return true
	}
	return false
}

func (p *ProcessorService) close() {
	if p.rabbit == nil {
		return
	}

	err := p.rabbit.connection.Close()
	if err != nil {
		log.WithError(err).Warning("Can't close rabbit connection")
	}
}

func (p *ProcessorService) createPostProcessingExchange() error {
	if len(p.config.RabbitPostExchange()) == 0 {
		p.rabbit.postChannel = nil
		return nil
	}

	ch, err := p.rabbit.connection.Channel()
	if err != nil {
		return errors.WrapPrefix(err, "failed to open a post channel", 0)
	}

	err = ch.ExchangeDeclare(
		p.config.RabbitPostExchange(),
		p.config.RabbitPostType(),
		true,
		true,
		false,
		false,
		nil,
	)
	if err != nil {
		return errors.WrapPrefix(err, "failed to declare an exchange", 0)
	}

	p.rabbit.postChannel = ch
	return nil
}

func (p *ProcessorService) sendNext(report *format.Report) {
	if p.rabbit == nil || p.rabbit.postChannel == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		log.WithError(err).
			Error("Can't serialize report")
		return
	}

	err = p.rabbit.postChannel.Publish(
		p.config.RabbitPostExchange(),
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		})
	if err != nil {
		log.WithError(err).
			Error("Can't send report to next stage")
	}
}

func (p *ProcessorService) reloadConfiguration() {
	log.Info("Try to reload configuration")
	if len(cfg.GlobalConfigPath) == 0 {
		return
	}

	conf, err := cfg.FromJson(cfg.GlobalConfigPath)
	if err != nil {
		log.WithError(err).
			Error("Error reading configuration file")
		return
	}

	if conf.LogLevel() != p.config.LogLevel() {
		err := p.changeLevel(conf.LogLevel())
		if err != nil {
			return
		}
	}

	// connections are kept, only processing settings are applied
	p.initFramesProcessor(conf, p.repository, p.metrics)

	cfg.GlobalConfig = conf
	p.config = conf
	log.Info("Reloaded configuration")
}

func (p *ProcessorService) changeLevel(l string) error {
	level, err := log.ParseLevel(l)
	if err != nil {
		log.WithError(err).
			Warn("Can't parse level")
		return err
	}

	log.WithFields(log.Fields{
		"old level": p.config.LogLevel(),
		"new level": l,
	}).
		Info("Change log level")
	log.SetLevel(level)
	return nil
}
