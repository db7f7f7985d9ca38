package model

import (
	"errors"

	log "github.com/golang/glog"

	"github.com/bobonovski/word2vec/matrix"
	"github.com/bobonovski/word2vec/table"
	"github.com/bobonovski/word2vec/util"
	"github.com/bobonovski/word2vec/vocab"
)

var ErrVocabTooSmall = errors.New("model: vocabulary needs at least two words")

// Options selects the output layers and their sizes.
type Options struct {
	Dim              int
	HS               bool
	Negative         int
	UnigramTableSize int
	MaxCodeLength    int
}

// Network is the state shared by all workers. Syn0 holds the input
// vectors, Syn1 the hierarchical softmax node vectors and Syn1Neg the
// negative sampling output vectors. Workers update rows without locking;
// the vocabulary and lookup tables are read only.
type Network struct {
	Vocab    *vocab.Vocabulary
	Dim      int
	Negative int

	Syn0    *matrix.Float32Matrix
	Syn1    *matrix.Float32Matrix
	Syn1Neg *matrix.Float32Matrix

	unigram *table.Unigram
	sigmoid *table.Sigmoid
}

// NewNetwork allocates the matrices required by opts. Input vectors are
// drawn uniformly from [-0.5/dim, 0.5/dim), output vectors start at zero.
// Hierarchical softmax assigns Huffman codes to v.
func NewNetwork(v *vocab.Vocabulary, opts Options) (*Network, error) {
	if v.Size() < 2 {
		return nil, ErrVocabTooSmall
	}
	n := &Network{
		Vocab:    v,
		Dim:      opts.Dim,
		Negative: opts.Negative,
		Syn0:     matrix.NewFloat32Matrix(v.Size(), opts.Dim),
		sigmoid:  table.NewSigmoid(),
	}
	if opts.HS {
		if err := v.AssignCodes(opts.MaxCodeLength); err != nil {
			return nil, err
		}
		n.Syn1 = matrix.NewFloat32Matrix(v.Size(), opts.Dim)
	}
	if opts.Negative > 0 {
		n.Syn1Neg = matrix.NewFloat32Matrix(v.Size(), opts.Dim)
		log.V(1).Infof("building unigram table")
		n.unigram = table.NewUnigram(v.Counts(), opts.UnigramTableSize)
	}
	r := NewRand(1)
	data := n.Syn0.Data()
	for i := range data {
		data[i] = (r.Float() - 0.5) / float32(opts.Dim)
	}
	return n, nil
}

// State is the private scratch space of one worker.
type State struct {
	Rand  *Rand
	Neu1  []float32
	Neu1e []float32
}

func NewState(dim int, seed uint64) *State {
	return &State{
		Rand:  NewRand(seed),
		Neu1:  make([]float32, dim),
		Neu1e: make([]float32, dim),
	}
}

// Learn runs the enabled output layers for the target word given the
// hidden representation h, accumulating the error for h into neu1e.
func (n *Network) Learn(word int32, h, neu1e []float32, alpha float32, r *Rand) {
	if n.Syn1 != nil {
		n.hierarchicalSoftmax(word, h, neu1e, alpha)
	}
	if n.Syn1Neg != nil {
		n.negativeSampling(word, h, neu1e, alpha, r)
	}
}

// one logistic regression per node on the Huffman path of word
func (n *Network) hierarchicalSoftmax(word int32, h, neu1e []float32, alpha float32) {
	e := n.Vocab.Entry(int(word))
	for d, point := range e.Point {
		row := n.Syn1.Row(int(point))
		f, ok := n.sigmoid.Lookup(util.Dot(h, row))
		if !ok {
			continue
		}
		// gradient multiplied by the learning rate
		g := (1 - float32(e.Code[d]) - f) * alpha
		util.Axpy(g, row, neu1e)
		util.Axpy(g, h, row)
	}
}

// one positive and n.Negative sampled targets against Syn1Neg
func (n *Network) negativeSampling(word int32, h, neu1e []float32, alpha float32, r *Rand) {
	size := uint64(n.Vocab.Size())
	for d := 0; d <= n.Negative; d++ {
		target, label := word, float32(1)
		if d > 0 {
			next := r.Next()
			target = n.unigram.Sample(next >> 16)
			if target == 0 {
				target = int32(next%(size-1)) + 1
			}
			if target == word {
				continue
			}
			label = 0
		}
		row := n.Syn1Neg.Row(int(target))
		dot := util.Dot(h, row)
		var g float32
		if f, ok := n.sigmoid.Lookup(dot); ok {
			g = (label - f) * alpha
		} else if dot > 0 {
			g = (label - 1) * alpha
		} else {
			g = label * alpha
		}
		util.Axpy(g, row, neu1e)
		util.Axpy(g, h, row)
	}
}
