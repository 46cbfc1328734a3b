package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/tvled/ledoff/adalight"
	"github.com/tvled/ledoff/config"
	"github.com/tvled/ledoff/hyperhdr"
	"github.com/tvled/ledoff/logger"
)

var (
	cfgPath = flag.String("config", "", "path to optional config file, created with defaults if missing")
	verbose = flag.Bool("v", false, "higher verbosity")
	version = flag.Bool("version", false, "print version & exit")
)

const usage = "usage: ledoff [flags] <device> <baudrate> <led_count>"

func main() {
	flag.Parse()

	// print version & exit
	if *version {
		fmt.Printf("ledoff %s\n", Version)
		os.Exit(0)
	}

	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	cfg := config.DefaultConfig
	cfg.Device = ""
	cfg.LedCount = 0
	cfg.Layout = adalight.Layout{}

	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Printf("⚠ Error: reading config \"%s\": %s\n", *cfgPath, err)
				return 1
			}
			if err = config.Save(&config.DefaultConfig, *cfgPath); err != nil {
				fmt.Printf("⚠ Error: creating config \"%s\": %s\n", *cfgPath, err)
				return 1
			}
			fmt.Fprintf(os.Stderr, "created new config file \"%s\"\n", *cfgPath)
		} else {
			cfg = *c
		}
	}

	// positional arguments override config values
	if len(args) >= 1 {
		cfg.Device = args[0]
	}
	if len(args) >= 2 {
		baud, err := strconv.Atoi(args[1])
		if err != nil || baud <= 0 {
			fmt.Println(usage)
			return 1
		}
		cfg.Serial.BaudRate = baud
	}
	if len(args) >= 3 {
		leds, err := strconv.Atoi(args[2])
		if err != nil || leds <= 0 {
			fmt.Println(usage)
			return 1
		}
		cfg.LedCount = leds
	}

	ledCount := cfg.Leds()
	if cfg.Device == "" || cfg.Serial.BaudRate <= 0 || ledCount < 1 {
		fmt.Println(usage)
		return 1
	}

	if *verbose {
		cfg.Logger.Level = "debug"
	}
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Printf("⚠ Error: %s\n", err)
		return 1
	}

	log.With(logger.Fields{
		"device": cfg.Device,
		"baud":   cfg.Serial.BaudRate,
		"leds":   ledCount,
	}).Debug("opening serial port")

	conn, err := adalight.OpenPortName(cfg.Device, &cfg.Serial)
	if err != nil {
		fmt.Printf("⚠ Serial error: %s\n", err)
		return 1
	}

	sender := adalight.NewSender(conn, &cfg.Adalight, log)
	sendErr := sender.TurnOff(ledCount)
	if err := sender.Close(); err != nil {
		log.Warnf("closing %s: %s", conn.Path(), err)
	}
	if sendErr != nil {
		var ce *adalight.ConnError
		if errors.As(sendErr, &ce) {
			fmt.Printf("⚠ Serial error: %s\n", sendErr)
		} else {
			fmt.Printf("⚠ Error: %s\n", sendErr)
		}
		return 1
	}

	// release the HyperHDR source so it doesn't re-drive the strip
	if cfg.HyperHDR.Enabled {
		if err := clearHyperHDR(cfg.HyperHDR); err != nil {
			log.Warnf("couldn't clear HyperHDR source: %s", err)
		} else {
			log.Debugf("cleared HyperHDR priority %d", cfg.HyperHDR.Priority)
		}
	}

	fmt.Println("✓ LEDs turned off")
	return 0
}

func clearHyperHDR(cfg hyperhdr.Config) error {
	client, err := hyperhdr.Dial(cfg)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Clear()
}
