package model

import "github.com/bobonovski/word2vec/util"

func init() {
	Register("skipgram", NewSkipGram)
}

// SkipGram predicts the center word from each context vector on its own.
type SkipGram struct{}

func NewSkipGram() Architecture {
	return &SkipGram{}
}

func (m *SkipGram) Step(net *Network, s *State, sen []int32, pos, window, b int, alpha float32) {
	context(len(sen), pos, window, b, func(c int) {
		l1 := net.Syn0.Row(int(sen[c]))
		util.Zero(s.Neu1e)
		net.Learn(sen[pos], l1, s.Neu1e, alpha, s.Rand)
		// learn weights input -> hidden
		util.Add(l1, s.Neu1e)
	})
}
