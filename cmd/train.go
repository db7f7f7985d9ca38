package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bobonovski/word2vec/config"
	"github.com/bobonovski/word2vec/metrics"
	"github.com/bobonovski/word2vec/trainer"
)

var (
	trainCfg        = config.Default()
	trainConfigFile string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train word vectors",
	Long: `Train word vectors or word classes on a corpus.

Examples:
  word2vec train --train text8 --output vectors.bin --binary --size 200
  word2vec train --train text8 --output classes.txt --classes 500
  word2vec train --config train.yaml --threads 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags(), trainCfg, trainConfigFile)
		if err != nil {
			return err
		}
		metrics.Serve(cfg.MetricsAddr)
		return trainer.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().StringVar(&trainConfigFile, "config", "", "YAML file with training parameters, explicit flags take precedence")
	bindTrainFlags(trainCmd.Flags(), trainCfg)
}

// bindTrainFlags registers every training parameter on fs, using the
// current values of cfg as defaults.
func bindTrainFlags(fs *pflag.FlagSet, cfg *config.Config) {
	bindVocabFlags(fs, cfg)
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "file to save the resulting word vectors or classes")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "size of word vectors")
	fs.IntVar(&cfg.Window, "window", cfg.Window, "max skip length between words")
	fs.Float64Var(&cfg.Sample, "sample", cfg.Sample, "threshold for occurrence of words, frequent ones are randomly down-sampled; 0 disables")
	fs.BoolVar(&cfg.HS, "hs", cfg.HS, "use hierarchical softmax")
	fs.IntVar(&cfg.Negative, "negative", cfg.Negative, "number of negative examples, 0 disables negative sampling")
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "number of training threads")
	fs.IntVar(&cfg.Iter, "iter", cfg.Iter, "training iterations")
	fs.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "starting learning rate, 0 picks 0.05 for cbow and 0.025 for skip-gram")
	fs.IntVar(&cfg.Classes, "classes", cfg.Classes, "output word classes rather than word vectors")
	fs.BoolVar(&cfg.Binary, "binary", cfg.Binary, "save the resulting vectors in binary mode")
	fs.BoolVar(&cfg.CBOW, "cbow", cfg.CBOW, "use the continuous bag of words model, false selects skip-gram")
	fs.IntVar(&cfg.MaxSentenceLength, "max-sentence-length", cfg.MaxSentenceLength, "words per training sentence")
	fs.IntVar(&cfg.UnigramTableSize, "unigram-table-size", cfg.UnigramTableSize, "slots of the negative sampling table")
	fs.IntVar(&cfg.MaxCodeLength, "max-code-length", cfg.MaxCodeLength, "longest allowed Huffman code")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base seed of the worker generators")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve prometheus metrics on this address")
}

// bindVocabFlags registers the parameters of vocabulary construction.
func bindVocabFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.TrainFile, "train", cfg.TrainFile, "text data to train the model")
	fs.StringVar(&cfg.SaveVocabFile, "save-vocab", cfg.SaveVocabFile, "file to save the vocabulary")
	fs.StringVar(&cfg.ReadVocabFile, "read-vocab", cfg.ReadVocabFile, "file to read the vocabulary from instead of the training data")
	fs.Int64Var(&cfg.MinCount, "min-count", cfg.MinCount, "discard words that appear less than this")
	fs.IntVar(&cfg.MaxTokenLength, "max-token-length", cfg.MaxTokenLength, "bytes kept per token")
	fs.IntVar(&cfg.VocabHashSize, "vocab-hash-size", cfg.VocabHashSize, "slots of the vocabulary hash index")
}

// resolveConfig returns flagCfg, or the YAML file at path with every flag
// changed on the command line applied over it.
func resolveConfig(flags *pflag.FlagSet, flagCfg *config.Config, path string) (*config.Config, error) {
	if path == "" {
		return flagCfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	overlay := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	bindTrainFlags(overlay, cfg)
	flags.Visit(func(f *pflag.Flag) {
		if overlay.Lookup(f.Name) == nil || err != nil {
			return
		}
		err = overlay.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
