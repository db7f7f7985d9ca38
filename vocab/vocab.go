package vocab

import (
	"sort"

	log "github.com/golang/glog"

	"github.com/bobonovski/word2vec/corpus"
	"github.com/bobonovski/word2vec/huffman"
)

const (
	// NotFound is returned by Lookup for unknown words.
	NotFound = -1
	// DefaultHashSize bounds the table at 0.7 * 30M = 21M words.
	DefaultHashSize = 30000000
	// MaxLoad is the hash load factor above which Observe compacts.
	MaxLoad = 0.7
)

// Entry is one vocabulary word. Code and Point are filled by AssignCodes:
// Point[d] is the output row of the d-th internal node on the path from the
// root and Code[d] the branch taken there.
type Entry struct {
	Word  string
	Count int64
	Code  []byte
	Point []int32
}

// CodeLen returns the Huffman code length of the entry.
func (e *Entry) CodeLen() int {
	return len(e.Code)
}

// Vocabulary is an insertion ordered word table with an open addressing
// hash index. Index 0 always holds the end-of-sentence sentinel. It is not
// safe for concurrent mutation; once sorted it is only read.
type Vocabulary struct {
	entries    []Entry
	hash       []int32
	minReduce  int64
	trainWords int64
}

// New creates a vocabulary holding only the sentinel. hashSize <= 0
// selects DefaultHashSize.
func New(hashSize int) *Vocabulary {
	if hashSize <= 0 {
		hashSize = DefaultHashSize
	}
	v := &Vocabulary{
		entries:   make([]Entry, 0, 1000),
		hash:      make([]int32, hashSize),
		minReduce: 1,
	}
	v.resetHash()
	v.Insert(corpus.EndOfSentence)
	return v
}

// returns hash value of a word
func (v *Vocabulary) wordHash(word string) uint64 {
	var h uint64
	for i := 0; i < len(word); i++ {
		h = h*257 + uint64(word[i])
	}
	return h % uint64(len(v.hash))
}

func (v *Vocabulary) resetHash() {
	for i := range v.hash {
		v.hash[i] = -1
	}
}

func (v *Vocabulary) index(i int) {
	h := v.wordHash(v.entries[i].Word)
	for v.hash[h] != -1 {
		h = (h + 1) % uint64(len(v.hash))
	}
	v.hash[h] = int32(i)
}

func (v *Vocabulary) reindex() {
	v.resetHash()
	for i := range v.entries {
		v.index(i)
	}
}

// Lookup returns the position of word, or NotFound.
func (v *Vocabulary) Lookup(word string) int {
	h := v.wordHash(word)
	for {
		i := v.hash[h]
		if i == -1 {
			return NotFound
		}
		if v.entries[i].Word == word {
			return int(i)
		}
		h = (h + 1) % uint64(len(v.hash))
	}
}

// Insert appends word with a zero count and returns its position. The
// caller is responsible for not inserting duplicates.
func (v *Vocabulary) Insert(word string) int {
	v.entries = append(v.entries, Entry{Word: word})
	i := len(v.entries) - 1
	v.index(i)
	return i
}

// Overloaded reports whether the hash index is above MaxLoad.
func (v *Vocabulary) Overloaded() bool {
	return float64(len(v.entries)) > float64(len(v.hash))*MaxLoad
}

// Observe counts one occurrence of word, inserting it if needed, and
// compacts the table when the hash index becomes overloaded.
func (v *Vocabulary) Observe(word string) {
	i := v.Lookup(word)
	if i == NotFound {
		i = v.Insert(word)
	}
	v.entries[i].Count++
	if v.Overloaded() {
		v.Compact()
	}
}

// Compact drops every word seen at most Threshold() times, keeping the
// sentinel, then raises the threshold by one so repeated compactions prune
// progressively more.
func (v *Vocabulary) Compact() {
	log.V(1).Infof("reducing vocabulary of %d words, threshold %d", len(v.entries), v.minReduce)
	kept := v.entries[:1]
	for _, e := range v.entries[1:] {
		if e.Count > v.minReduce {
			kept = append(kept, e)
		}
	}
	clear(v.entries[len(kept):])
	v.entries = kept
	v.reindex()
	v.minReduce++
}

// Threshold returns the count at or below which the next Compact prunes.
func (v *Vocabulary) Threshold() int64 {
	return v.minReduce
}

// Sort orders all words but the sentinel by descending count, ties kept
// in insertion order, discards words seen fewer than minCount times,
// rebuilds the hash index and recomputes TrainWords. Codes are cleared.
func (v *Vocabulary) Sort(minCount int64) {
	log.V(1).Infof("sorting vocabulary of %d words", len(v.entries))
	rest := v.entries[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Count > rest[j].Count
	})
	n := 1
	for n < len(v.entries) && v.entries[n].Count >= minCount {
		n++
	}
	clear(v.entries[n:])
	v.entries = v.entries[:n]

	v.trainWords = 0
	for i := range v.entries {
		v.entries[i].Code = nil
		v.entries[i].Point = nil
		v.trainWords += v.entries[i].Count
	}
	v.reindex()
}

// AssignCodes builds the Huffman tree over the current order and stores
// each word's code and path. maxLen <= 0 selects huffman.MaxCodeLength.
func (v *Vocabulary) AssignCodes(maxLen int) error {
	log.V(1).Infof("creating binary tree over %d words", len(v.entries))
	tree, err := huffman.Build(v.Counts(), maxLen)
	if err != nil {
		return err
	}
	for i := range v.entries {
		v.entries[i].Code = tree.Codes[i].Bits
		v.entries[i].Point = tree.Codes[i].Path
	}
	return nil
}

// Size returns the number of words, sentinel included.
func (v *Vocabulary) Size() int {
	return len(v.entries)
}

// Entry returns the i-th word.
func (v *Vocabulary) Entry(i int) *Entry {
	return &v.entries[i]
}

// Word returns the text of the i-th word.
func (v *Vocabulary) Word(i int) string {
	return v.entries[i].Word
}

// Count returns the count of the i-th word.
func (v *Vocabulary) Count(i int) int64 {
	return v.entries[i].Count
}

// Counts returns a copy of all counts in vocabulary order.
func (v *Vocabulary) Counts() []int64 {
	counts := make([]int64, len(v.entries))
	for i := range v.entries {
		counts[i] = v.entries[i].Count
	}
	return counts
}

// Words returns all words in vocabulary order.
func (v *Vocabulary) Words() []string {
	words := make([]string, len(v.entries))
	for i := range v.entries {
		words[i] = v.entries[i].Word
	}
	return words
}

// TrainWords is the sum of counts after the last Sort, or the number of
// tokens read while learning before that.
func (v *Vocabulary) TrainWords() int64 {
	return v.trainWords
}
