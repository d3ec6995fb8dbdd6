// SPDX-License-Identifier: MIT

package field

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// commentPrefix starts a comment that runs to the end of the line.
const commentPrefix = "#"

// maxLineBytes bounds a single input line; dumps are short numeric rows.
const maxLineBytes = 1 << 20

// Load opens path and reads the sample table from it.
//
// Errors:
//   - ErrOpen (wrapped with the path) if the file cannot be opened.
//   - Anything Read returns.
func Load(path string) (*Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	defer fh.Close()

	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Read parses a whitespace-delimited table of Columns numeric fields per row.
//
// Stage 1 (Scan): iterate lines; drop '#' comments and blank lines.
// Stage 2 (Parse): split on runs of whitespace, require exactly Columns
// finite float64 tokens.
// Stage 3 (Finalize): reject an empty table.
//
// Errors:
//   - *ParseError wrapping ErrColumnCount, ErrNotNumeric or ErrNonFinite.
//   - ErrEmpty if no data rows were found.
//   - The underlying reader error, if any.
//
// Complexity: O(N) time and memory.
func Read(r io.Reader) (*Field, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	f := newField(0)
	var line int
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			continue
		}

		s, err := parseRow(tokens)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		f.append(s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("field: read after line %d: %w", line, err)
	}
	if f.Len() == 0 {
		return nil, ErrEmpty
	}

	return f, nil
}

// parseRow converts exactly Columns tokens into a Sample.
func parseRow(tokens []string) (Sample, error) {
	if len(tokens) != Columns {
		return Sample{}, fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(tokens), Columns)
	}

	var v [Columns]float64
	for i, tok := range tokens {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Sample{}, fmt.Errorf("%w: column %d %q", ErrNotNumeric, i+1, tok)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Sample{}, fmt.Errorf("%w: column %d %q", ErrNonFinite, i+1, tok)
		}
		v[i] = x
	}

	return Sample{X: v[0], Y: v[1], DX: v[2], DY: v[3], Mag: v[4]}, nil
}

// Write encodes f in the format Read accepts, one sample per line.
// Values use the shortest representation that round-trips.
func Write(w io.Writer, f *Field) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < f.Len(); i++ {
		s := f.Sample(i)
		if _, err := fmt.Fprintf(bw, "%s %s %s %s %s\n",
			fmtFloat(s.X), fmtFloat(s.Y), fmtFloat(s.DX), fmtFloat(s.DY), fmtFloat(s.Mag)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
