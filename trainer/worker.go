package trainer

import (
	"io"
	"math"

	log "github.com/golang/glog"

	"github.com/bobonovski/word2vec/corpus"
	"github.com/bobonovski/word2vec/metrics"
	"github.com/bobonovski/word2vec/model"
	"github.com/bobonovski/word2vec/vocab"
)

// worker owns a shard cursor, a generator seeded from its id and the
// scratch vectors of the architecture.
type worker struct {
	t     *Trainer
	id    int
	state *model.State
	sen   []int32
}

func newWorker(t *Trainer, id int) *worker {
	return &worker{
		t:     t,
		id:    id,
		state: model.NewState(t.cfg.Size, uint64(t.cfg.Seed)+uint64(id)),
		sen:   make([]int32, 0, t.cfg.MaxSentenceLength),
	}
}

func (w *worker) run() error {
	cfg := w.t.cfg
	offset := corpus.ShardOffset(w.t.fileSize, cfg.Threads, w.id)
	shard, err := corpus.OpenShard(cfg.TrainFile, offset, cfg.MaxTokenLength)
	if err != nil {
		return err
	}
	defer shard.Close()

	budget := w.t.trainWords / int64(cfg.Threads)
	localIter := cfg.Iter
	var wordCount, lastWordCount int64
	pos := 0
	for {
		if wordCount-lastWordCount > progressInterval {
			w.t.report(wordCount - lastWordCount)
			lastWordCount = wordCount
		}
		eof := false
		if len(w.sen) == 0 {
			var n int64
			if eof, n, err = w.readSentence(shard); err != nil {
				return err
			}
			wordCount += n
			pos = 0
		}
		if eof || wordCount > budget {
			w.t.wordCountActual.Add(wordCount - lastWordCount)
			metrics.AddWords(wordCount - lastWordCount)
			metrics.EpochDone(w.id)
			localIter--
			log.V(1).Infof("worker %d finished an epoch, %d left", w.id, localIter)
			if localIter == 0 {
				return nil
			}
			wordCount, lastWordCount = 0, 0
			w.sen = w.sen[:0]
			if err := shard.Rewind(); err != nil {
				return err
			}
			continue
		}
		// every word of the sentence was subsampled away
		if len(w.sen) == 0 {
			continue
		}

		b := int(w.state.Rand.Next() % uint64(cfg.Window))
		w.t.arch.Step(w.t.net, w.state, w.sen, pos, cfg.Window, b, w.t.Alpha())

		pos++
		if pos >= len(w.sen) {
			w.sen = w.sen[:0]
		}
	}
}

// readSentence fills w.sen with in-vocabulary words until the sentence
// marker, the sentence length limit or the end of the shard. It returns
// the number of words read, subsampled ones included.
func (w *worker) readSentence(r *corpus.Shard) (eof bool, n int64, err error) {
	v := w.t.net.Vocab
	cfg := w.t.cfg
	threshold := cfg.Sample * float64(w.t.trainWords)
	for {
		tok, err := r.Next()
		if err == io.EOF {
			return true, n, nil
		}
		if err != nil {
			return false, n, err
		}
		word := v.Lookup(tok)
		if word == vocab.NotFound {
			continue
		}
		n++
		if word == 0 {
			return false, n, nil
		}
		// subsampling randomly discards frequent words while keeping the ranking same
		if cfg.Sample > 0 {
			cn := float64(v.Count(word))
			keep := (math.Sqrt(cn/threshold) + 1) * threshold / cn
			if keep < float64(w.state.Rand.Float()) {
				continue
			}
		}
		w.sen = append(w.sen, int32(word))
		if len(w.sen) >= cfg.MaxSentenceLength {
			return false, n, nil
		}
	}
}
