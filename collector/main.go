package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iqoption/yabs-frames/collector/api"
	"github.com/iqoption/yabs-frames/collector/cfg"
	log "github.com/sirupsen/logrus"
)

var Build string
var Version string

const (
	SIGHUP  = syscall.SIGHUP
	SIGTERM = syscall.SIGTERM
)

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
			log.WithError(err).Fatal("Error reading configuration file")
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
	var service api.GinCollectorService
	err := service.Init()
	if err != nil {
		log.WithError(err).Fatal("Can't init collector")
	}

	go func() {
		err := service.Start()
		if err != nil {
			log.WithError(err).Fatal("Collector stopped")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, SIGHUP, SIGTERM, os.Interrupt)
	for sig := range signals {
		if sig != SIGHUP {
			log.WithField("signal", sig).Info("Shutdown collector")
			if err := service.Close(); err != nil {
				log.WithError(err).Error("Can't close rabbit connection")
			}
			return
		}
		handleSignal()
	}
}

// listeners and queues stay, handlers read the reloaded configuration
func handleSignal() {
	cfg.GlobalConfigMutex.Lock()
	defer cfg.GlobalConfigMutex.Unlock()

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

	if conf.LogLevel() != cfg.GlobalConfig.LogLevel() {
		err := changeLevel(conf.LogLevel())
		if err != nil {
			return
		}
	}

	cfg.GlobalConfig = conf
	log.Info("Reloaded configuration")
}

func changeLevel(l string) error {
	level, err := log.ParseLevel(l)
	if err != nil {
		log.WithError(err).
			Warn("Can't parse level")
		return err
	}

	log.WithFields(log.Fields{
		"old level": cfg.GlobalConfig.LogLevel(),
		"new level": l,
	}).
		Info("Change log level")
	log.SetLevel(level)
	return nil
}
