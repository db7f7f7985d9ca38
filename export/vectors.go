package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bobonovski/word2vec/matrix"
)

var ErrCorrupted = errors.New("export: vector data corrupted")

// WriteVectors writes a "<words> <dim>" header and one record per word:
// the word, a space and its row either as "%f " text components or as
// little endian float32 values, followed by a newline.
func WriteVectors(w io.Writer, words []string, m matrix.Matrix, binaryf bool) error {
	r, c := m.Shape()
	if r != len(words) {
		return fmt.Errorf("%d words for %d rows", len(words), r)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", r, c)
	for i, word := range words {
		fmt.Fprintf(bw, "%s ", word)
		row := m.Row(i)
		if binaryf {
			if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
				return err
			}
		} else {
			for _, val := range row {
				fmt.Fprintf(bw, "%f ", val)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadVectors parses the output of WriteVectors.
func ReadVectors(r io.Reader, binaryf bool) ([]string, *matrix.Float32Matrix, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing header", ErrCorrupted)
	}
	var rows, dim int
	if _, err := fmt.Sscanf(header, "%d %d", &rows, &dim); err != nil {
		return nil, nil, fmt.Errorf("%w: header %q", ErrCorrupted, header)
	}
	if rows <= 0 || dim <= 0 {
		return nil, nil, fmt.Errorf("%w: shape %dx%d", ErrCorrupted, rows, dim)
	}
	m := matrix.NewFloat32Matrix(rows, dim)
	words := make([]string, rows)
	for i := 0; i < rows; i++ {
		word, err := br.ReadString(' ')
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", ErrCorrupted, i, err)
		}
		words[i] = strings.TrimSpace(word)
		row := m.Row(i)
		if binaryf {
			if err := binary.Read(br, binary.LittleEndian, row); err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrCorrupted, i, err)
			}
			if _, err := br.ReadString('\n'); err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrCorrupted, i, err)
			}
			continue
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != dim {
			return nil, nil, fmt.Errorf("%w: row %d has %d values", ErrCorrupted, i, len(fields))
		}
		for j, f := range fields {
			val, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrCorrupted, i, err)
			}
			row[j] = float32(val)
		}
	}
	return words, m, nil
}

// WriteClasses writes one "<word> <class>" line per word.
func WriteClasses(w io.Writer, words []string, classes []int) error {
	if len(words) != len(classes) {
		return fmt.Errorf("%d words for %d classes", len(words), len(classes))
	}
	bw := bufio.NewWriter(w)
	for i, word := range words {
		fmt.Fprintf(bw, "%s %d\n", word, classes[i])
	}
	return bw.Flush()
}
