package trainer

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/word2vec/config"
	"github.com/bobonovski/word2vec/export"
	"github.com/bobonovski/word2vec/vocab"
)

func TestRunWritesVectors(t *testing.T) {
	for _, binaryf := range []bool{false, true} {
		cfg := testConfig(writeCorpus(t, 100))
		cfg.Binary = binaryf
		cfg.OutputFile = filepath.Join(t.TempDir(), "vectors")
		require.NoError(t, Run(cfg))

		f, err := os.Open(cfg.OutputFile)
		require.NoError(t, err)
		words, m, err := export.ReadVectors(bufio.NewReader(f), binaryf)
		f.Close()
		require.NoError(t, err)

		rows, dim := m.Shape()
		assert.Equal(t, len(sampleWords)+1, rows)
		assert.Equal(t, cfg.Size, dim)
		assert.Equal(t, "</s>", words[0])
		assert.ElementsMatch(t, sampleWords, words[1:])
	}
}

func TestRunWritesClasses(t *testing.T) {
	cfg := testConfig(writeCorpus(t, 100))
	cfg.Classes = 3
	cfg.OutputFile = filepath.Join(t.TempDir(), "classes.txt")
	require.NoError(t, Run(cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, len(sampleWords)+1)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 2)
		class, err := strconv.Atoi(fields[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, class, 0)
		assert.Less(t, class, cfg.Classes)
	}
}

func TestRunVocabularyOnly(t *testing.T) {
	cfg := testConfig(writeCorpus(t, 20))
	cfg.SaveVocabFile = filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, Run(cfg))

	saved, err := vocab.LoadFile(cfg.SaveVocabFile, vocabOptions(cfg))
	require.NoError(t, err)
	learned, err := vocab.LearnFile(cfg.TrainFile, vocabOptions(cfg))
	require.NoError(t, err)
	assert.Equal(t, learned.Words(), saved.Words())
	assert.Equal(t, learned.Counts(), saved.Counts())

	// a saved vocabulary replaces the learning pass
	cfg.ReadVocabFile, cfg.SaveVocabFile = cfg.SaveVocabFile, ""
	cfg.OutputFile = filepath.Join(t.TempDir(), "vectors.txt")
	require.NoError(t, Run(cfg))
	_, err = os.Stat(cfg.OutputFile)
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.txt"))
	cfg.OutputFile = filepath.Join(t.TempDir(), "vectors.txt")
	assert.Error(t, Run(cfg))

	cfg = testConfig(writeCorpus(t, 10))
	cfg.HS, cfg.Negative = false, 0
	assert.ErrorIs(t, Run(cfg), config.ErrInvalid)

	cfg = testConfig(writeCorpus(t, 10))
	cfg.ReadVocabFile = filepath.Join(t.TempDir(), "missing.vocab")
	assert.Error(t, Run(cfg))
}
