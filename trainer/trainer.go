// Package trainer runs asynchronous SGD over a corpus. A fixed set of
// workers, one per shard of the corpus file, update the shared network
// without locks: concurrent writes to the same matrix row may interleave
// and lose an update, which the optimization tolerates because any single
// row is touched rarely compared to the total number of updates. Only the
// processed-word counter and the learning rate are atomic, so readers
// never observe torn values; their cross-worker staleness is accepted.
package trainer

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	log "github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/bobonovski/word2vec/config"
	"github.com/bobonovski/word2vec/corpus"
	"github.com/bobonovski/word2vec/metrics"
	"github.com/bobonovski/word2vec/model"
)

// progressInterval is the number of words a worker reads between
// learning rate updates.
const progressInterval = 10000

// minAlphaRatio bounds the annealed learning rate from below.
const minAlphaRatio = 0.0001

type Trainer struct {
	cfg  *config.Config
	net  *model.Network
	arch model.Architecture

	fileSize   int64
	trainWords int64
	startAlpha float32

	alpha           atomic.Uint32 // float32 bits
	wordCountActual atomic.Int64
	start           time.Time
}

// New prepares a trainer for cfg over net. The corpus file must exist.
func New(cfg *config.Config, net *model.Network) (*Trainer, error) {
	ctor, err := model.GetArchitecture(cfg.Architecture())
	if err != nil {
		return nil, err
	}
	size, err := corpus.Size(cfg.TrainFile)
	if err != nil {
		return nil, err
	}
	t := &Trainer{
		cfg:        cfg,
		net:        net,
		arch:       ctor(),
		fileSize:   size,
		trainWords: net.Vocab.TrainWords(),
		startAlpha: float32(cfg.LearningRate()),
	}
	t.setAlpha(t.startAlpha)
	return t, nil
}

// Train starts one worker per configured thread and waits for all of them
// to finish their epochs. Workers stop independently; the join is the only
// synchronization point.
func (t *Trainer) Train() error {
	log.Infof("starting training using file %s", t.cfg.TrainFile)
	t.start = time.Now()
	var g errgroup.Group
	for id := 0; id < t.cfg.Threads; id++ {
		w := newWorker(t, id)
		g.Go(w.run)
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	log.Infof("training finished in %s", time.Since(t.start).Round(time.Millisecond))
	return nil
}

// Network returns the trained network.
func (t *Trainer) Network() *model.Network {
	return t.net
}

// Alpha returns the current learning rate.
func (t *Trainer) Alpha() float32 {
	return math.Float32frombits(t.alpha.Load())
}

func (t *Trainer) setAlpha(alpha float32) {
	t.alpha.Store(math.Float32bits(alpha))
	metrics.SetLearningRate(alpha)
}

// WordsProcessed returns the number of words reported by all workers.
func (t *Trainer) WordsProcessed() int64 {
	return t.wordCountActual.Load()
}

// report adds delta processed words and anneals the learning rate
// linearly toward minAlphaRatio of its starting value.
func (t *Trainer) report(delta int64) {
	actual := t.wordCountActual.Add(delta)
	metrics.AddWords(delta)
	total := float64(int64(t.cfg.Iter)*t.trainWords + 1)
	if log.V(2) {
		elapsed := time.Since(t.start).Seconds() + 1
		log.Infof("alpha: %f  progress: %.2f%%  words/thread/sec: %.2fk",
			t.Alpha(), float64(actual)/total*100,
			float64(actual)/elapsed/float64(t.cfg.Threads)/1000)
	}
	alpha := t.startAlpha * float32(1-float64(actual)/total)
	if min := t.startAlpha * minAlphaRatio; alpha < min {
		alpha = min
	}
	t.setAlpha(alpha)
}
