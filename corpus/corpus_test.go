package corpus

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) []string {
	var words []string
	for {
		w, err := r.Next()
		if err == io.EOF {
			return words
		}
		require.NoError(t, err)
		words = append(words, w)
	}
}

func TestReaderTokens(t *testing.T) {
	r := NewReader(strings.NewReader("the cat\tsat\r\non the\n\nmat"), 0)

	assert.Equal(t,
		[]string{"the", "cat", "sat", EndOfSentence, "on", "the", EndOfSentence, EndOfSentence, "mat"},
		readAll(t, r))
}

func TestReaderSkipsRepeatedBlanks(t *testing.T) {
	r := NewReader(strings.NewReader("  a   b \t c  "), 0)

	assert.Equal(t, []string{"a", "b", "c"}, readAll(t, r))
}

func TestReaderTruncatesLongTokens(t *testing.T) {
	r := NewReader(strings.NewReader("abcdefghij xy"), 5)

	assert.Equal(t, []string{"abcd", "xy"}, readAll(t, r))
}

func TestReaderEmpty(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), 0).Next()
	assert.Equal(t, io.EOF, err)
}

func TestShardRewind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("aaa bbb cc"), 0o644))

	size, err := Size(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
	assert.Equal(t, int64(5), ShardOffset(size, 2, 1))

	s, err := OpenShard(path, ShardOffset(size, 2, 1), 0)
	require.NoError(t, err)
	defer s.Close()

	// shards start mid-stream, a partial token is expected
	first := readAll(t, s.Reader)
	assert.Equal(t, []string{"bb", "cc"}, first)

	require.NoError(t, s.Rewind())
	assert.Equal(t, first, readAll(t, s.Reader))
}

func TestOpenShardMissingFile(t *testing.T) {
	_, err := OpenShard(filepath.Join(t.TempDir(), "missing"), 0, 0)
	assert.Error(t, err)

	_, err = Size(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
