package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bobonovski/word2vec/config"
	"github.com/bobonovski/word2vec/trainer"
)

var vocabCfg = config.Default()

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Build and save a vocabulary",
	Long: `Count the words of a corpus and save the pruned, sorted vocabulary
so later training runs can skip the counting pass with --read-vocab.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if vocabCfg.TrainFile == "" && vocabCfg.ReadVocabFile == "" {
			return fmt.Errorf("%w: --train or --read-vocab is required", config.ErrInvalid)
		}
		v, err := trainer.BuildVocab(vocabCfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "vocab size: %s\nwords in train file: %s\n",
			humanize.Comma(int64(v.Size())), humanize.Comma(v.TrainWords()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	bindVocabFlags(vocabCmd.Flags(), vocabCfg)
}
