package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Jx2f/CayleyRand/internal/config"
	"github.com/Jx2f/CayleyRand/internal/core"
	"github.com/Jx2f/CayleyRand/pkg/logger"
)

var (
	seed     = flag.String("s", "", "seed, a hex number (defaults to the configured value)")
	gen      = flag.Bool("g", false, "generate infinite Cayley32 pseudo-random bits (fixed generators)")
	genEx    = flag.Bool("ge", false, "generate infinite Cayley32 pseudo-random bits (pseudo-random generators)")
	genMT    = flag.Bool("gm", false, "generate infinite Mersenne Twister pseudo-random bits")
	confFile = flag.String("c", "", "JSON config file (or CONFIG_FILE)")
)

func usage() {
	fmt.Fprintln(os.Stderr, "CayleyRand: a pseudo-random number generator based on the symmetric group S_32.")
	fmt.Fprintln(os.Stderr, "With no flags, prints a timing report.")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "To test with DieHarder: CayleyRand -s 99999 -g | dieharder -g 200 -a")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	c := config.DefaultConfig
	f := *confFile
	if f == "" {
		f = os.Getenv("CONFIG_FILE")
	}
	if f != "" {
		var err error
		c, err = config.LoadConfig(f)
		if err != nil {
			panic(err)
		}
	}
	if *seed != "" {
		c.Seed = *seed
	}
	switch c.LogLevel {
	case "trace":
		logger.Logger = logger.Logger.Level(zerolog.TraceLevel)
	case "debug":
		logger.Logger = logger.Logger.Level(zerolog.DebugLevel)
	case "info":
		logger.Logger = logger.Logger.Level(zerolog.InfoLevel)
	case "silent", "disabled":
		logger.Logger = logger.Logger.Level(zerolog.Disabled)
	}

	task := core.TaskTime
	switch {
	case *gen:
		task = core.TaskGenerate
	case *genEx:
		task = core.TaskGenerateEx
	case *genMT:
		task = core.TaskGenerateMT
	}

	s := core.NewService(c, task, os.Stdout)

	exited := make(chan error)
	go func() {
		exited <- s.Start()
	}()

	// Wait for a signal to quit:
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-exited:
		if err != nil {
			logger.Error().Err(err).Msg("Generator exited")
		}
	case <-sig:
		logger.Info().Msg("Signal received, stopping generator")
		if err := s.Stop(); err != nil {
			logger.Error().Err(err).Msg("Generator stop failed")
		}
	}
}
