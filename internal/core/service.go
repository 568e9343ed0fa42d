package core

import (
	"context"
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Jx2f/CayleyRand/internal/config"
	"github.com/Jx2f/CayleyRand/pkg/logger"
	"github.com/Jx2f/CayleyRand/pkg/mt19937"
	"github.com/Jx2f/CayleyRand/pkg/uintx"
)

// Task selects what the service does.
type Task int

const (
	TaskTime       Task = iota // timing report (default)
	TaskGenerate               // fixed-generator bitstream
	TaskGenerateEx             // pseudo-random-generator bitstream
	TaskGenerateMT             // Mersenne Twister baseline bitstream
)

type Service struct {
	config *config.Config
	task   Task
	out    io.Writer

	ctx       context.Context
	ctxCancel context.CancelFunc
}

func NewService(c *config.Config, t Task, out io.Writer) *Service {
	s := new(Service)
	s.config = c
	s.task = t
	s.out = out
	s.ctx, s.ctxCancel = context.WithCancel(context.Background())
	return s
}

func (s *Service) Start() error {
	seed, err := uintx.ParseHex(s.config.Seed)
	if err != nil {
		return errors.Wrapf(err, "seed %q", s.config.Seed)
	}
	mt := mt19937.New(seed.Uint64())

	switch s.task {
	case TaskGenerate:
		c := NewCayley32()
		if err := s.seedFixed(c, seed); err != nil {
			return err
		}
		logger.Debug().Msgf("Generator 0: %s", c.Generator(0).Rank().Hex())
		logger.Debug().Msgf("Generator 1: %s", c.Generator(1).Rank().Hex())
		return s.generate(c.Rand)
	case TaskGenerateEx:
		c := NewCayley32()
		c.SeedRandom(mt)
		return s.generate(c.Rand)
	case TaskGenerateMT:
		return s.generate(mt.Uint64)
	default:
		return s.time(seed, mt)
	}
}

func (s *Service) Stop() error {
	s.ctxCancel()
	return nil
}

func (s *Service) seedFixed(c *Cayley32, seed uintx.Uintx) error {
	g := s.config.Generators
	if g == nil {
		return c.Seed(seed)
	}
	g0, err := uintx.ParseHex(g.G0)
	if err != nil {
		return errors.Wrap(err, "generator g0")
	}
	g1, err := uintx.ParseHex(g.G1)
	if err != nil {
		return errors.Wrap(err, "generator g1")
	}
	return c.SeedFixed(g0, g1, seed)
}

// generate streams little-endian 64-bit words into the sink until Stop is
// called or the sink breaks the pipe (the test harness does exactly that
// when it has enough data). The producer fills 8-byte-aligned buffers while
// a second goroutine writes the previous one, so generating a buffer
// overlaps with writing the one before it.
func (s *Service) generate(next func() uint64) error {
	words := s.config.BufferWords
	bufs := make(chan []byte, 1)
	g, ctx := errgroup.WithContext(s.ctx)
	g.Go(func() error {
		defer close(bufs)
		for {
			b := make([]byte, 8*words)
			for i := 0; i < words; i++ {
				binary.LittleEndian.PutUint64(b[8*i:], next())
			}
			select {
			case bufs <- b:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
	g.Go(func() error {
		for b := range bufs {
			if _, err := s.out.Write(b); err != nil {
				return errors.Wrap(err, "sink")
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// time reports the average number of nanoseconds per bit generated by
// Cayley32 and by the Mersenne Twister.
func (s *Service) time(seed uintx.Uintx, mt *mt19937.Source) error {
	words := s.config.TimingWords
	c := NewCayley32()
	if err := s.seedFixed(c, seed); err != nil {
		return err
	}

	logger.Info().Msgf("Timing the generation of %d megabits by Cayley32 and the Mersenne Twister", words*64/(1<<20))

	t0 := perBit(c.Rand, words)
	logger.Info().Msgf("Cayley32: %0.2f nanoseconds per bit", t0)

	t1 := perBit(mt.Uint64, words)
	logger.Info().Msgf("Mersenne Twister: %0.2f nanoseconds per bit", t1)

	logger.Info().Msgf("Cayley32 is %0.1f times slower", t0/t1)
	return nil
}

func perBit(next func() uint64, words uint64) float64 {
	start := time.Now()
	for i := uint64(0); i < words; i++ {
		next()
	}
	return float64(time.Since(start).Nanoseconds()) / float64(words*64)
}
