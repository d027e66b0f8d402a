package substitution

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// ErrLoad marks a substitution source that could not be read or parsed.
var ErrLoad = errors.New("substitution data load failure")

//go:embed substitutions.csv
var embedded []byte

// Parse reads "basic,auxiliary" records, one per line.
func Parse(r io.Reader) ([]Pair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	var pairs []Pair
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}

		line, _ := cr.FieldPos(0)

		basic, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: basic key: %w", ErrLoad, line, err)
		}

		aux, err := strconv.ParseUint(rec[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: auxiliary key: %w", ErrLoad, line, err)
		}

		pairs = append(pairs, Pair{Basic: uint32(basic), Auxiliary: uint32(aux)})
	}

	return pairs, nil
}

// Write stores pairs in the format read by Parse.
func Write(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", p.Basic, p.Auxiliary); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load parses r and builds an index from it.
func Load(r io.Reader) (*Index, error) {
	pairs, err := Parse(r)
	if err != nil {
		return nil, err
	}

	idx, err := New(pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return idx, nil
}

func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	return Load(f)
}

// LoadOrEmpty loads the table at path. Failures are logged and produce an
// empty index: digests stay correct, only without bad word avoidance.
func LoadOrEmpty(path string) *Index {
	idx, err := LoadFile(path)
	if err != nil {
		slog.Warn("substitutions unavailable, continuing without",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return Empty()
	}

	slog.Debug("substitutions loaded",
		slog.String("path", path),
		slog.Int("count", idx.Len()),
	)

	return idx
}

// Embedded returns the table shipped with the module.
func Embedded() *Index {
	idx, err := Load(bytes.NewReader(embedded))
	if err != nil {
		slog.Warn("embedded substitutions unavailable, continuing without", slog.Any("error", err))
		return Empty()
	}
	return idx
}
