package keyspace

import (
	"fmt"
	"iter"

	"github.com/jsundh/regidi/internal/syllable"
)

// DefaultFirstOnly is how many auxiliary syllables, counted from the start of
// the auxiliary range, only appear in the first position.
const DefaultFirstOnly = 8

// Bounds is a half-open range [Lo, Hi) of syllable indices.
type Bounds struct {
	Lo int
	Hi int
}

func (b Bounds) Len() uint64 {
	return uint64(b.Hi - b.Lo)
}

// Space enumerates every three-syllable combination allowed by its bounds,
// in lexicographic order of syllable indices.
type Space struct {
	positions [3]Bounds
	fieldBits uint
}

// Basic is the 18-bit keyspace of ordinary digests.
func Basic() *Space {
	b := Bounds{Lo: 0, Hi: syllable.BasicCount}
	return &Space{positions: [3]Bounds{b, b, b}, fieldBits: 6}
}

// Auxiliary is the space of substitute digests. firstOnly syllables at the
// start of the auxiliary range are excluded from the second and third positions.
func Auxiliary(firstOnly int) (*Space, error) {
	width := syllable.Count - syllable.AuxiliaryStart
	if firstOnly < 0 || firstOnly >= width {
		return nil, fmt.Errorf("first-only count %d outside [0, %d)", firstOnly, width)
	}

	first := Bounds{Lo: syllable.AuxiliaryStart, Hi: syllable.Count}
	rest := Bounds{Lo: syllable.AuxiliaryStart + firstOnly, Hi: syllable.Count}

	return &Space{positions: [3]Bounds{first, rest, rest}, fieldBits: 7}, nil
}

// Size returns the number of combinations in the space.
func (s *Space) Size() uint64 {
	return s.positions[0].Len() * s.positions[1].Len() * s.positions[2].Len()
}

// Triple converts an enumeration index to syllable indices.
// Returns false if index is out of range.
func (s *Space) Triple(index uint64) ([3]int, bool) {
	var out [3]int
	if index >= s.Size() {
		return out, false
	}

	for i := 2; i >= 0; i-- {
		base := s.positions[i].Len()
		out[i] = s.positions[i].Lo + int(index%base)
		index /= base
	}

	return out, true
}

// Key packs syllable indices the way the space's digests are keyed:
// 6 bits per field for basic keys, 7 for auxiliary keys.
func (s *Space) Key(k [3]int) uint32 {
	b := s.fieldBits
	return uint32(k[0])<<(2*b) | uint32(k[1])<<b | uint32(k[2])
}

// Render concatenates the syllables at k without consulting any substitutions.
func Render(k [3]int) string {
	return syllable.MustGet(k[0]) + syllable.MustGet(k[1]) + syllable.MustGet(k[2])
}

// All yields every key in the space with its digest.
func (s *Space) All() iter.Seq2[uint32, string] {
	return s.Range(0, s.Size())
}

// Range yields the keys for enumeration indices in [start, end).
func (s *Space) Range(start, end uint64) iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		stop := min(end, s.Size())
		if start >= stop {
			return
		}

		k, _ := s.Triple(start)
		for i := start; i < stop; i++ {
			if !yield(s.Key(k), Render(k)) {
				return
			}

			// odometer step, last position fastest
			pos := 2
			for pos >= 0 {
				k[pos]++
				if k[pos] < s.positions[pos].Hi {
					break
				}
				k[pos] = s.positions[pos].Lo
				pos--
			}
		}
	}
}
