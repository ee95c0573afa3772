package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/olivere/elastic.v5"
)

const (
	URL = `url`
)

var ElasticClient *elastic.Client = nil

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "frames-cli",
		Usage: "command line utils for YABS frames",
		Commands: []*cli.Command{
			FingerprintCommand(),
			RemoveCommand(),
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.WithError(err).Fatal("Failed")
	}
}

func initElasticClient(url string) {
	c, err := elastic.NewClient(elastic.SetURL(url))

	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"url":   url,
		}).Fatal("Can't create ElasticSearch client")
	}
	ElasticClient = c
}
