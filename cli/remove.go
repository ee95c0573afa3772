package main

import (
	"context"
	"fmt"
	"reflect"

	"github.com/iqoption/yabs-frames/common/data/base"
	"github.com/iqoption/yabs-frames/common/format"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/olivere/elastic.v5"
)

const (
	AGE    = `older`
	SOURCE = `source`
	SIZE   = `count`
	SHOW   = `show_only`
)

type Callback func(c *cli.Context, args []string) error

var rmCallbacks = map[string]Callback{
	"frames": rmFrames,
}

func RemoveCommand() *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Action:  remove,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  AGE,
				Value: "90d",
			},
			&cli.StringFlag{
				Name:  SOURCE,
				Value: ".*", //Regular expression
			},
			&cli.StringFlag{
				Name:  URL,
				Value: "http://127.0.0.1:9200",
			},
			&cli.IntFlag{
				Name:  SIZE,
				Value: 1000,
			},
			&cli.BoolFlag{
				Name: SHOW,
			},
		},
	}
}

func remove(c *cli.Context) error {
	if c.NArg() == 0 {
		message := `Empty task, available values:
	frames`
		fmt.Fprintln(c.App.Writer, message)
		return fmt.Errorf("Empty task")
	}

	task := c.Args().Get(0)

	cb, ok := rmCallbacks[task]
	if !ok {
		fmt.Fprintf(c.App.Writer, "Unknown task %s\n", task)
		return fmt.Errorf("Unknown task %s", task)
	}

	initElasticClient(c.String(URL))
	return cb(c, c.Args().Tail())
}

func rmFrames(c *cli.Context, args []string) error {

	older := c.String(AGE)
	source := c.String(SOURCE)
	size := c.Int(SIZE)
	showOnly := c.Bool(SHOW)

	rng := elastic.NewRangeQuery("date_added")
	rng.Lte(fmt.Sprintf("now-%s", older))

	query := elastic.NewBoolQuery().Must(rng, elastic.NewRegexpQuery("source", source))

	searchResult, err := ElasticClient.Search().
		Index(base.FramesIndex).
		Type(base.FrameType).
		Query(query).
		Sort("date_added", true).
		Size(size).
		Do(context.Background())
	if err != nil {
		log.WithError(err).Error("Can't call to Elastic")
		return err
	}

	var doc format.FrameDoc
	for _, item := range searchResult.Each(reflect.TypeOf(doc)) {
		d := item.(format.FrameDoc)

		if showOnly {
			log.WithFields(log.Fields{
				"fingerprint": d.Fingerprint,
				"name":        d.Name(),
				"lang":        d.Lang,
				"date":        d.DateAdded,
			}).Info("Frame")
			continue
		}

		_, err := elastic.NewDeleteService(ElasticClient).
			Index(base.FramesIndex).
			Type(base.FrameType).
			Id(d.Fingerprint).
			Do(context.Background())
		if err != nil {
			log.WithFields(log.Fields{
				"error":       err,
				"fingerprint": d.Fingerprint,
			}).Error("Can't remove document in Elastic")

			return err
		}

		log.WithFields(log.Fields{
			"fingerprint": d.Fingerprint,
			"name":        d.Name(),
		}).Info("Removed frame")
	}

	return nil
}
