package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
)

// Save writes one "<word> <count>" line per word in vocabulary order.
func (v *Vocabulary) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range v.entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", v.entries[i].Word, v.entries[i].Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile writes the snapshot to path.
func (v *Vocabulary) SaveFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := v.Save(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Load reads a snapshot written by Save and returns it sorted with words
// below minCount discarded.
func Load(r io.Reader, opts Options) (*Vocabulary, error) {
	v := New(opts.HashSize)
	scanner := bufio.NewScanner(r)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx += 1
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w", lineIdx, ErrBadSnapshot)
		}
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineIdx, ErrBadSnapshot, err)
		}
		i := v.Lookup(fields[0])
		if i == NotFound {
			i = v.Insert(fields[0])
			if v.Overloaded() {
				return nil, fmt.Errorf("snapshot exceeds hash capacity %d", len(v.hash))
			}
		}
		v.entries[i].Count = count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	v.Sort(opts.MinCount)
	log.Infof("vocab size: %d", v.Size())
	log.Infof("words in train file: %d", v.TrainWords())
	return v, nil
}

// LoadFile reads the snapshot at path.
func LoadFile(path string, opts Options) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary file not found: %w", err)
	}
	defer f.Close()
	return Load(f, opts)
}
