package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iqoption/yabs-frames/processor/cfg"
	"github.com/iqoption/yabs-frames/processor/service"
	log "github.com/sirupsen/logrus"
)

var Build string
var Version string

func init() {

	var cPath string
	var showVersion bool = false
	var showBuild bool = false

	flag.StringVar(&cPath, "config", "", "path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.BoolVar(&showBuild, "build", false, "show build")
	flag.Parse()

	if showVersion {
		fmt.Printf("Version: %s\n", Version)
		os.Exit(0)
	}

	if showBuild {
		fmt.Printf("Build: %s\n", Build)
		os.Exit(0)
	}

	if cPath != "" {
		conf, err := cfg.FromJson(cPath)
		if err != nil {
			log.WithError(err).
				Fatal("Error reading configuration file")
		}

		cfg.GlobalConfig = conf
		cfg.GlobalConfigPath = cPath
	} else {
		flag.PrintDefaults()
		log.Fatal("Config file is not set")
	}

	level, err := log.ParseLevel(cfg.GlobalConfig.LogLevel())
	if err == nil {
		log.WithField("level", level).
			Info("Change log level")
		log.SetLevel(level)
	} else {
		log.WithError(err).Warning("Can't setup log level")
	}
}

func main() {
	processor := service.ProcessorService{}
	err := processor.Init(cfg.GlobalConfig)
	if err != nil {
		log.WithError(err).Fatal("Can't start processor")
	}

	log.WithFields(log.Fields{
		"queue":   cfg.GlobalConfig.RabbitQueue(),
		"workers": cfg.GlobalConfig.Workers(),
	}).Info("Processor started")
	processor.Loop()
}
