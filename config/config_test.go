package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 100, c.Size)
	assert.Equal(t, 5, c.Window)
	assert.True(t, c.CBOW)
	assert.Equal(t, "cbow", c.Architecture())
	assert.Equal(t, 0.05, c.LearningRate())

	c.CBOW = false
	assert.Equal(t, "skipgram", c.Architecture())
	assert.Equal(t, 0.025, c.LearningRate())

	c.Alpha = 0.1
	assert.Equal(t, 0.1, c.LearningRate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w2v.yaml")
	require.NoError(t, os.WriteFile(path, []byte("train: corpus.txt\nsize: 32\ncbow: false\nhs: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "corpus.txt", c.TrainFile)
	assert.Equal(t, 32, c.Size)
	assert.False(t, c.CBOW)
	assert.True(t, c.HS)
	// untouched keys keep their defaults
	assert.Equal(t, 5, c.Negative)
	assert.NoError(t, c.Validate())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w2v.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: 32\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"no train file", func(c *Config) { c.TrainFile = "" }},
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"no output layer", func(c *Config) { c.HS, c.Negative = false, 0 }},
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"negative sample", func(c *Config) { c.Sample = -1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			c.TrainFile = "corpus.txt"
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
