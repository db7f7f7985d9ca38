package vocab

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	log "github.com/golang/glog"

	"github.com/bobonovski/word2vec/corpus"
)

// Options controls vocabulary construction.
type Options struct {
	MinCount       int64
	HashSize       int
	MaxTokenLength int
}

// Learn counts every token of r in a single streaming pass and returns the
// sorted vocabulary.
func Learn(r io.Reader, opts Options) (*Vocabulary, error) {
	v := New(opts.HashSize)
	cr := corpus.NewReader(r, opts.MaxTokenLength)
	var words int64
	for {
		word, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		words++
		if words%100000 == 0 {
			log.V(2).Infof("%sK words read", humanize.Comma(words/1000))
		}
		v.Observe(word)
	}
	v.Sort(opts.MinCount)
	log.Infof("vocab size: %s", humanize.Comma(int64(v.Size())))
	log.Infof("words in train file: %s", humanize.Comma(words))
	return v, nil
}

// LearnFile runs Learn over the file at path.
func LearnFile(path string, opts Options) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("training data file not found: %w", err)
	}
	defer f.Close()
	return Learn(f, opts)
}
