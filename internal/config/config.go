package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	LogLevel    string            `json:"logLevel,omitempty"`
	Seed        string            `json:"seed,omitempty"` // hex, reduced mod 32! at seeding
	Generators  *ConfigGenerators `json:"generators,omitempty"`
	BufferWords int               `json:"bufferWords,omitempty"` // sink buffer size in 8-byte words
	TimingWords uint64            `json:"timingWords,omitempty"` // words generated by the timing report
}

// ConfigGenerators overrides the built-in fixed generator pair with the
// reverse lexicographic ranks of another pair, in hex. Both must be given
// and both must have maximal order.
type ConfigGenerators struct {
	G0 string `json:"g0,omitempty"`
	G1 string `json:"g1,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	c := new(Config)
	d := json.NewDecoder(f)
	if err := d.Decode(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if c.Seed == "" {
		c.Seed = DefaultConfig.Seed
	}
	if c.BufferWords <= 0 {
		c.BufferWords = DefaultConfig.BufferWords
	}
	if c.TimingWords == 0 {
		c.TimingWords = DefaultConfig.TimingWords
	}
	if c.Generators != nil && (c.Generators.G0 == "" || c.Generators.G1 == "") {
		return nil, errors.New("generator pair must configure both g0 and g1")
	}
	return c, nil
}

var DefaultConfig = &Config{
	LogLevel:    "info",
	Seed:        "99999",
	BufferWords: 1 << 20,
	TimingWords: 1 << 25,
}
