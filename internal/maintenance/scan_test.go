package maintenance

import (
	"context"
	"testing"

	"github.com/jsundh/regidi/internal/keyspace"
	"github.com/jsundh/regidi/pkg/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	aux, err := keyspace.Auxiliary(keyspace.DefaultFirstOnly)
	require.NoError(t, err)

	tests := []struct {
		name         string
		space        *keyspace.Space
		words        []string
		workers      int
		wantExcluded uint64
		wantMatched  []string
	}{
		{
			name:         "single digest",
			space:        keyspace.Basic(),
			words:        []string{"potato"},
			workers:      4,
			wantExcluded: 1,
			wantMatched:  []string{"potato"},
		},
		{
			name:         "word spanning syllables",
			space:        keyspace.Basic(),
			words:        []string{"zz", "tit"},
			workers:      3,
			wantExcluded: 2286,
			wantMatched:  []string{"tit"},
		},
		{
			name:         "default words on the basic space",
			space:        keyspace.Basic(),
			words:        DefaultWords(),
			workers:      0,
			wantExcluded: 4074,
			wantMatched:  []string{"caca", "cum", "dago", "fag", "homo", "kaka", "mofo", "tit"},
		},
		{
			name:         "default words on the auxiliary space",
			space:        aux,
			words:        DefaultWords(),
			workers:      5,
			wantExcluded: 112,
			wantMatched:  []string{"rape"},
		},
		{
			name:         "no words",
			space:        keyspace.Basic(),
			words:        nil,
			workers:      2,
			wantExcluded: 0,
			wantMatched:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Scan(context.Background(), tt.space, tt.words, tt.workers)
			require.NoError(t, err)

			assert.Equal(t, tt.space.Size(), report.Total)
			assert.Equal(t, tt.wantExcluded, report.Excluded)
			assert.ElementsMatch(t, tt.wantMatched, set.Sorted(report.Matched))
		})
	}
}

func TestScan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, keyspace.Basic(), []string{"tit"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_Ratio(t *testing.T) {
	assert.Zero(t, (&Report{}).Ratio())
	assert.InDelta(t, 0.25, (&Report{Excluded: 1, Total: 4}).Ratio(), 1e-9)
}
