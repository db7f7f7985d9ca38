package cmd

import (
	"flag"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "word2vec",
	Short: "word2vec - distributed word representations",
	Long: `word2vec learns vector representations of words from a plain text
corpus with the continuous bag-of-words or skip-gram architectures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog flags are registered on the standard set and parsed by pflag
		flag.CommandLine.Parse(nil)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Flush()
	},
}

func init() {
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func Execute() error {
	return rootCmd.Execute()
}
