package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid value")

// Config holds every training parameter.
type Config struct {
	TrainFile     string `yaml:"train"`
	OutputFile    string `yaml:"output"`
	SaveVocabFile string `yaml:"save_vocab"`
	ReadVocabFile string `yaml:"read_vocab"`

	Size     int     `yaml:"size"`      // vector dimension
	Window   int     `yaml:"window"`    // max skip length between words
	Sample   float64 `yaml:"sample"`    // subsampling threshold, 0 disables
	HS       bool    `yaml:"hs"`        // hierarchical softmax
	Negative int     `yaml:"negative"`  // negative examples, 0 disables
	Threads  int     `yaml:"threads"`   // worker count
	Iter     int     `yaml:"iter"`      // training epochs
	MinCount int64   `yaml:"min_count"` // discard rarer words
	Alpha    float64 `yaml:"alpha"`     // starting learning rate, 0 = model default
	Classes  int     `yaml:"classes"`   // k-means classes instead of vectors
	Binary   bool    `yaml:"binary"`
	CBOW     bool    `yaml:"cbow"`

	MaxSentenceLength int   `yaml:"max_sentence_length"`
	MaxTokenLength    int   `yaml:"max_token_length"`
	UnigramTableSize  int   `yaml:"unigram_table_size"`
	VocabHashSize     int   `yaml:"vocab_hash_size"`
	MaxCodeLength     int   `yaml:"max_code_length"`
	Seed              int64 `yaml:"seed"`

	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the standard training defaults.
func Default() *Config {
	return &Config{
		Size:              100,
		Window:            5,
		Sample:            1e-3,
		Negative:          5,
		Threads:           12,
		Iter:              5,
		MinCount:          5,
		CBOW:              true,
		MaxSentenceLength: 1000,
		MaxTokenLength:    100,
		UnigramTableSize:  1e8,
		VocabHashSize:     30000000,
		MaxCodeLength:     40,
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LearningRate returns the starting learning rate, 0.05 for CBOW and
// 0.025 for skip-gram unless set explicitly.
func (c *Config) LearningRate() float64 {
	if c.Alpha > 0 {
		return c.Alpha
	}
	if c.CBOW {
		return 0.05
	}
	return 0.025
}

// Architecture names the registered model for this configuration.
func (c *Config) Architecture() string {
	if c.CBOW {
		return "cbow"
	}
	return "skipgram"
}

func (c *Config) Validate() error {
	check := func(ok bool, name string, val interface{}) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s = %v", ErrInvalid, name, val)
	}
	for _, err := range []error{
		check(c.TrainFile != "", "train", c.TrainFile),
		check(c.Size > 0, "size", c.Size),
		check(c.Window > 0, "window", c.Window),
		check(c.Sample >= 0, "sample", c.Sample),
		check(c.Negative >= 0, "negative", c.Negative),
		check(c.HS || c.Negative > 0, "hs/negative", "both disabled"),
		check(c.Threads > 0, "threads", c.Threads),
		check(c.Iter > 0, "iter", c.Iter),
		check(c.Alpha >= 0, "alpha", c.Alpha),
		check(c.Classes >= 0, "classes", c.Classes),
		check(c.MaxSentenceLength > 0, "max_sentence_length", c.MaxSentenceLength),
		check(c.MaxTokenLength > 1, "max_token_length", c.MaxTokenLength),
		check(c.UnigramTableSize > 0, "unigram_table_size", c.UnigramTableSize),
		check(c.VocabHashSize > 0, "vocab_hash_size", c.VocabHashSize),
		check(c.MaxCodeLength > 0, "max_code_length", c.MaxCodeLength),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
