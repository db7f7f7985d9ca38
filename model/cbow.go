package model

import "github.com/bobonovski/word2vec/util"

func init() {
	Register("cbow", NewCBOW)
}

// CBOW predicts the center word from the average of its context vectors
// and spreads the error back to every context word.
type CBOW struct{}

func NewCBOW() Architecture {
	return &CBOW{}
}

func (m *CBOW) Step(net *Network, s *State, sen []int32, pos, window, b int, alpha float32) {
	util.Zero(s.Neu1)
	util.Zero(s.Neu1e)
	cw := 0
	// in -> hidden
	context(len(sen), pos, window, b, func(c int) {
		util.Add(s.Neu1, net.Syn0.Row(int(sen[c])))
		cw++
	})
	if cw == 0 {
		return
	}
	util.Div(s.Neu1, float32(cw))
	net.Learn(sen[pos], s.Neu1, s.Neu1e, alpha, s.Rand)
	// hidden -> in
	context(len(sen), pos, window, b, func(c int) {
		util.Add(net.Syn0.Row(int(sen[c])), s.Neu1e)
	})
}
