package service

import (
	"encoding/json"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/collector/cfg"
	"github.com/iqoption/yabs-frames/common/task"
	logger "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

type RabbitClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queue      amqp.Queue
}

type CollectorService struct {
	cfg    cfg.Config
	rabbit *RabbitClient
}

func (s *CollectorService) AddFrames(reportId string, info json.RawMessage, frames []json.RawMessage) error {
	t := task.CreateFramesTask(reportId, info, frames)
	msg, err := json.Marshal(t)
	if err != nil {
		logger.WithError(err).Error("Can't serialize message")
		return err
	}
	return s.publish(msg)
}

func (s *CollectorService) publish(msg []byte) error {
	return s.rabbit.channel.Publish("",
		s.rabbit.queue.Name,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         msg,
		})
}

func (s *CollectorService) Close() error {
	return s.rabbit.connection.Close()
}

func newRabbitClient(conf cfg.Config) (*RabbitClient, error) {
	conn, err := amqp.Dial(conf.RabbitServer())
	if err != nil {
		logger.WithError(err).Error("Failed to connect to RabbitMQ")
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Error("Failed to open a channel")
		conn.Close()
		return nil, err
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
		logger.WithError(err).Error("Failed to declare a queue")
		conn.Close()
		return nil, err
	}

	return &RabbitClient{conn, ch, q}, nil
}

func NewCollector(c cfg.Config) (*CollectorService, error) {
	client, err := newRabbitClient(c)
	if err != nil {
		logger.Error("Can't connect to rabbit")
		return nil, errors.WrapPrefix(err, "Can't connect to rabbit", 0)
	}

	return &CollectorService{c, client}, nil
}
