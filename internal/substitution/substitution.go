package substitution

import (
	"errors"
	"fmt"
	"iter"

	"github.com/jsundh/regidi/internal/syllable"
)

const (
	BasicMask     = 1<<18 - 1
	AuxiliaryMask = 1<<21 - 1
)

var ErrCollision = errors.New("substitution collision")
var ErrOutOfRange = errors.New("substitution key out of range")

// Pair replaces the digest of Basic with the auxiliary syllables packed in Auxiliary.
type Pair struct {
	Basic     uint32
	Auxiliary uint32
}

// Index is a read-only bidirectional view of a substitution table.
// It is safe for concurrent use.
type Index struct {
	pairs   []Pair
	forward map[uint32]uint32
	reverse map[uint32]uint32
}

var empty = &Index{
	forward: map[uint32]uint32{},
	reverse: map[uint32]uint32{},
}

// Empty returns an index without substitutions.
func Empty() *Index {
	return empty
}

// New builds an index from pairs. A basic key or auxiliary key that appears
// twice is rejected with ErrCollision; nothing is kept in that case.
func New(pairs []Pair) (*Index, error) {
	idx := &Index{
		pairs:   make([]Pair, 0, len(pairs)),
		forward: make(map[uint32]uint32, len(pairs)),
		reverse: make(map[uint32]uint32, len(pairs)),
	}

	for i, p := range pairs {
		if err := checkPair(p); err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}

		if prev, ok := idx.forward[p.Basic]; ok {
			return nil, fmt.Errorf("%w: basic key %d mapped to %d and %d", ErrCollision, p.Basic, prev, p.Auxiliary)
		}

		if prev, ok := idx.reverse[p.Auxiliary]; ok {
			return nil, fmt.Errorf("%w: auxiliary key %d claimed by %d and %d", ErrCollision, p.Auxiliary, prev, p.Basic)
		}

		idx.forward[p.Basic] = p.Auxiliary
		idx.reverse[p.Auxiliary] = p.Basic
		idx.pairs = append(idx.pairs, p)
	}

	return idx, nil
}

func checkPair(p Pair) error {
	if p.Basic > BasicMask {
		return fmt.Errorf("%w: basic key %d exceeds 18 bits", ErrOutOfRange, p.Basic)
	}

	if p.Auxiliary > AuxiliaryMask {
		return fmt.Errorf("%w: auxiliary key %d exceeds 21 bits", ErrOutOfRange, p.Auxiliary)
	}

	for _, k := range SplitAuxiliary(p.Auxiliary) {
		if !syllable.IsAuxiliary(k) {
			return fmt.Errorf("%w: auxiliary key %d uses syllable %d", ErrOutOfRange, p.Auxiliary, k)
		}
	}

	return nil
}

// SplitAuxiliary unpacks the three 7-bit syllable indices of an auxiliary key.
func SplitAuxiliary(aux uint32) [3]int {
	return [3]int{
		int(aux>>14) & 0x7f,
		int(aux>>7) & 0x7f,
		int(aux) & 0x7f,
	}
}

// JoinAuxiliary packs three syllable indices into an auxiliary key.
func JoinAuxiliary(k1, k2, k3 int) uint32 {
	return uint32(k1)<<14 | uint32(k2)<<7 | uint32(k3)
}

func (i *Index) Forward(basic uint32) (uint32, bool) {
	aux, ok := i.forward[basic]
	return aux, ok
}

func (i *Index) Reverse(aux uint32) (uint32, bool) {
	basic, ok := i.reverse[aux]
	return basic, ok
}

func (i *Index) Len() int {
	return len(i.pairs)
}

// All yields the pairs in the order they were supplied.
func (i *Index) All() iter.Seq2[uint32, uint32] {
	return func(yield func(uint32, uint32) bool) {
		for _, p := range i.pairs {
			if !yield(p.Basic, p.Auxiliary) {
				return
			}
		}
	}
}
