package pkg

import (
	"fmt"
)

// Range represents a range [Start, End) of keyspace indices.
type Range struct {
	Start uint64
	End   uint64
}

func (r Range) Len() uint64 {
	return r.End - r.Start
}

// SplitRange splits the space [0, totalSize) into contiguous ranges whose
// sizes differ by at most one. Asking for more parts than there are
// indices is an error.
func SplitRange(totalSize uint64, parts int) ([]Range, error) {
	if parts <= 0 {
		return []Range{}, nil
	}

	if totalSize == 0 {
		return nil, fmt.Errorf("split empty space")
	}

	if uint64(parts) > totalSize {
		return nil, fmt.Errorf("parts (%d) exceed total size (%d)", parts, totalSize)
	}

	ranges := make([]Range, parts)
	baseSize := totalSize / uint64(parts)
	remainder := totalSize % uint64(parts)

	var start uint64
	for i := range ranges {
		size := baseSize
		if uint64(i) < remainder {
			size++ // the first ranges absorb the remainder
		}

		ranges[i] = Range{Start: start, End: start + size}
		start += size
	}

	return ranges, nil
}
