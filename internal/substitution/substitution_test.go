package substitution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []Pair
		wantLen int
		wantErr error
	}{
		{
			name:    "no pairs",
			pairs:   nil,
			wantLen: 0,
		},
		{
			name: "distinct pairs",
			pairs: []Pair{
				{Basic: 195, Auxiliary: JoinAuxiliary(64, 72, 72)},
				{Basic: 674, Auxiliary: JoinAuxiliary(64, 72, 73)},
			},
			wantLen: 2,
		},
		{
			name: "duplicate basic key",
			pairs: []Pair{
				{Basic: 195, Auxiliary: JoinAuxiliary(64, 72, 72)},
				{Basic: 195, Auxiliary: JoinAuxiliary(64, 72, 73)},
			},
			wantErr: ErrCollision,
		},
		{
			name: "duplicate auxiliary key",
			pairs: []Pair{
				{Basic: 195, Auxiliary: JoinAuxiliary(64, 72, 72)},
				{Basic: 674, Auxiliary: JoinAuxiliary(64, 72, 72)},
			},
			wantErr: ErrCollision,
		},
		{
			name:    "basic key wider than 18 bits",
			pairs:   []Pair{{Basic: 1 << 18, Auxiliary: JoinAuxiliary(64, 72, 72)}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "auxiliary key wider than 21 bits",
			pairs:   []Pair{{Basic: 1, Auxiliary: 1 << 21}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "auxiliary key using a basic syllable",
			pairs:   []Pair{{Basic: 1, Auxiliary: JoinAuxiliary(64, 3, 72)}},
			wantErr: ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := New(tt.pairs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, idx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, idx.Len())
		})
	}
}

func TestIndex_Lookup(t *testing.T) {
	aux := JoinAuxiliary(70, 80, 90)
	idx, err := New([]Pair{{Basic: 63471, Auxiliary: aux}})
	require.NoError(t, err)

	got, ok := idx.Forward(63471)
	require.True(t, ok)
	assert.Equal(t, aux, got)

	basic, ok := idx.Reverse(aux)
	require.True(t, ok)
	assert.Equal(t, uint32(63471), basic)

	_, ok = idx.Forward(63472)
	assert.False(t, ok)

	_, ok = idx.Reverse(JoinAuxiliary(70, 80, 91))
	assert.False(t, ok)
}

func TestEmpty(t *testing.T) {
	idx := Empty()
	assert.Equal(t, 0, idx.Len())

	_, ok := idx.Forward(0)
	assert.False(t, ok)

	for range idx.All() {
		t.Fatal("empty index yielded a pair")
	}
}

func TestIndex_All(t *testing.T) {
	pairs := []Pair{
		{Basic: 9, Auxiliary: JoinAuxiliary(64, 72, 74)},
		{Basic: 3, Auxiliary: JoinAuxiliary(64, 72, 73)},
		{Basic: 7, Auxiliary: JoinAuxiliary(64, 72, 72)},
	}
	idx, err := New(pairs)
	require.NoError(t, err)

	var got []Pair
	for basic, aux := range idx.All() {
		got = append(got, Pair{Basic: basic, Auxiliary: aux})
	}
	assert.Equal(t, pairs, got)

	count := 0
	for range idx.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestAuxiliaryPacking(t *testing.T) {
	tests := []struct {
		k [3]int
	}{
		{[3]int{64, 72, 72}},
		{[3]int{95, 95, 95}},
		{[3]int{71, 80, 88}},
	}

	for _, tt := range tests {
		aux := JoinAuxiliary(tt.k[0], tt.k[1], tt.k[2])
		assert.LessOrEqual(t, aux, uint32(AuxiliaryMask))
		assert.Equal(t, tt.k, SplitAuxiliary(aux))
	}

	assert.Equal(t, uint32(1057864), JoinAuxiliary(64, 72, 72))
}
