package trainer

import (
	"bufio"
	"fmt"
	"os"

	log "github.com/golang/glog"

	"github.com/bobonovski/word2vec/cluster"
	"github.com/bobonovski/word2vec/config"
	"github.com/bobonovski/word2vec/export"
	"github.com/bobonovski/word2vec/metrics"
	"github.com/bobonovski/word2vec/model"
	"github.com/bobonovski/word2vec/vocab"
)

// kmeansIterations is the fixed number of Lloyd rounds for classes output.
const kmeansIterations = 10

func vocabOptions(cfg *config.Config) vocab.Options {
	return vocab.Options{
		MinCount:       cfg.MinCount,
		HashSize:       cfg.VocabHashSize,
		MaxTokenLength: cfg.MaxTokenLength,
	}
}

// BuildVocab reads the snapshot named by cfg.ReadVocabFile or learns the
// vocabulary from the training file, and saves it when cfg.SaveVocabFile
// is set.
func BuildVocab(cfg *config.Config) (*vocab.Vocabulary, error) {
	var (
		v   *vocab.Vocabulary
		err error
	)
	if cfg.ReadVocabFile != "" {
		v, err = vocab.LoadFile(cfg.ReadVocabFile, vocabOptions(cfg))
	} else {
		v, err = vocab.LearnFile(cfg.TrainFile, vocabOptions(cfg))
	}
	if err != nil {
		return nil, err
	}
	metrics.SetVocabSize(v.Size())
	if cfg.SaveVocabFile != "" {
		if err := v.SaveFile(cfg.SaveVocabFile); err != nil {
			return nil, fmt.Errorf("save vocabulary: %w", err)
		}
		log.Infof("vocabulary saved to %s", cfg.SaveVocabFile)
	}
	return v, nil
}

// Run executes the whole pipeline for cfg: vocabulary, training and the
// vector or class output. Without an output file it stops after the
// vocabulary.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	v, err := BuildVocab(cfg)
	if err != nil {
		return err
	}
	if cfg.OutputFile == "" {
		return nil
	}
	net, err := model.NewNetwork(v, model.Options{
		Dim:              cfg.Size,
		HS:               cfg.HS,
		Negative:         cfg.Negative,
		UnigramTableSize: cfg.UnigramTableSize,
		MaxCodeLength:    cfg.MaxCodeLength,
	})
	if err != nil {
		return err
	}
	t, err := New(cfg, net)
	if err != nil {
		return err
	}
	if err := t.Train(); err != nil {
		return err
	}
	return save(cfg, net)
}

func save(cfg *config.Config, net *model.Network) error {
	out, err := os.Create(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer out.Close()
	bw := bufio.NewWriter(out)

	words := net.Vocab.Words()
	if cfg.Classes > 0 {
		classes := cluster.KMeans(net.Syn0, cfg.Classes, kmeansIterations)
		err = export.WriteClasses(bw, words, classes)
	} else {
		err = export.WriteVectors(bw, words, net.Syn0, cfg.Binary)
	}
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	log.Infof("output written to %s", cfg.OutputFile)
	return out.Close()
}
