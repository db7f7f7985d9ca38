package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	// EndOfSentence is the token produced for a newline that ends a line.
	EndOfSentence = "</s>"
	// MaxTokenLength is the default truncation limit for a single token.
	MaxTokenLength = 100
)

// Reader splits a byte stream into whitespace delimited tokens. Space, tab
// and newline separate tokens, carriage returns are ignored and a newline
// is reported as EndOfSentence once the token preceding it was returned.
type Reader struct {
	br     *bufio.Reader
	maxLen int
	buf    []byte
}

// NewReader wraps r. Tokens longer than maxLen-1 bytes are truncated; a
// non-positive maxLen selects MaxTokenLength.
func NewReader(r io.Reader, maxLen int) *Reader {
	if maxLen <= 0 {
		maxLen = MaxTokenLength
	}
	return &Reader{
		br:     bufio.NewReader(r),
		maxLen: maxLen,
		buf:    make([]byte, 0, maxLen),
	}
}

// Next returns the next token. io.EOF is returned only when the stream is
// exhausted and no partial token is pending.
func (r *Reader) Next() (string, error) {
	r.buf = r.buf[:0]
	for {
		ch, err := r.br.ReadByte()
		if err != nil {
			if len(r.buf) > 0 && err == io.EOF {
				return string(r.buf), nil
			}
			return "", err
		}
		switch ch {
		case '\r':
			continue
		case ' ', '\t', '\n':
			if len(r.buf) > 0 {
				if ch == '\n' {
					r.br.UnreadByte()
				}
				return string(r.buf), nil
			}
			if ch == '\n' {
				return EndOfSentence, nil
			}
			continue
		}
		// too long tokens are silently truncated
		if len(r.buf) < r.maxLen-1 {
			r.buf = append(r.buf, ch)
		}
	}
}

// Size returns the byte size of the corpus file at path.
func Size(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("training data file not found: %w", err)
	}
	return fi.Size(), nil
}

// Shard is a private cursor over one byte range of a corpus file.
type Shard struct {
	f      *os.File
	offset int64
	*Reader
}

// ShardOffset returns the start offset of shard id out of n shards for a
// file of the given size.
func ShardOffset(size int64, n, id int) int64 {
	return size / int64(n) * int64(id)
}

// OpenShard opens path and positions a fresh Reader at offset.
func OpenShard(path string, offset int64, maxLen int) (*Shard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("training data file not found: %w", err)
	}
	s := &Shard{f: f, offset: offset}
	if err := s.Rewind(); err != nil {
		f.Close()
		return nil, err
	}
	s.Reader = NewReader(f, maxLen)
	return s, nil
}

// Rewind seeks back to the shard start and drops any buffered bytes.
func (s *Shard) Rewind() error {
	if _, err := s.f.Seek(s.offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", s.offset, err)
	}
	if s.Reader != nil {
		s.Reader.br.Reset(s.f)
	}
	return nil
}

func (s *Shard) Close() error {
	return s.f.Close()
}
