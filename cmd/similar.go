package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bobonovski/word2vec/export"
	"github.com/bobonovski/word2vec/matrix"
	"github.com/bobonovski/word2vec/util"
)

var ErrUnknownWord = errors.New("word not in vocabulary")

var (
	similarVectors string
	similarBinary  bool
	similarTop     int
)

var similarCmd = &cobra.Command{
	Use:   "similar WORD...",
	Short: "Print the nearest words by cosine similarity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(similarVectors)
		if err != nil {
			return err
		}
		defer f.Close()
		words, m, err := export.ReadVectors(bufio.NewReader(f), similarBinary)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, query := range args {
			res, err := nearest(words, m, query, similarTop)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n", query)
			for _, n := range res {
				fmt.Fprintf(out, "  %-20s %f\n", n.word, n.score)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(similarCmd)
	similarCmd.Flags().StringVar(&similarVectors, "vectors", "", "vector file written by train")
	similarCmd.Flags().BoolVar(&similarBinary, "binary", false, "the vector file is in binary mode")
	similarCmd.Flags().IntVarP(&similarTop, "top", "n", 40, "number of neighbors to print")
	similarCmd.MarkFlagRequired("vectors")
}

type neighbor struct {
	word  string
	score float32
}

// nearest ranks every other word by cosine similarity to query.
func nearest(words []string, m *matrix.Float32Matrix, query string, top int) ([]neighbor, error) {
	target := -1
	for i, w := range words {
		if w == query {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWord, query)
	}
	vec := m.Row(target)
	res := make([]neighbor, 0, len(words)-1)
	for i, w := range words {
		if i == target {
			continue
		}
		res = append(res, neighbor{word: w, score: util.Cosine(vec, m.Row(i))})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].score > res[j].score
	})
	if top < len(res) {
		res = res[:top]
	}
	return res, nil
}
