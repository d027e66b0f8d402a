package regidi

import (
	"fmt"

	"github.com/jsundh/regidi/internal/substitution"
	"github.com/jsundh/regidi/internal/syllable"
)

const (
	MinDigest18Len = 6
	MaxDigest18Len = 9
)

type split [3]int

// Candidate syllable lengths per digest length, in the order they are tried.
var splits = map[int][]split{
	6: {{2, 2, 2}},
	7: {{2, 2, 3}, {2, 3, 2}, {3, 2, 2}},
	8: {{2, 3, 3}, {3, 2, 3}, {3, 3, 2}},
	9: {{3, 3, 3}},
}

// ReverseDigest18 returns the key whose digest18 is digest.
//
// The first candidate split whose three parts are all syllables is used.
// Digests made of auxiliary syllables that no substitution produces yield
// ErrNoInput.
func (c *Codec) ReverseDigest18(digest string) (uint32, error) {
	if len(digest) < MinDigest18Len || len(digest) > MaxDigest18Len {
		return 0, fmt.Errorf("%w: expected %d-%d characters, got %d",
			ErrInvalidDigestLength, MinDigest18Len, MaxDigest18Len, len(digest))
	}

	k, ok := tokenize(digest)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvableSplit, digest)
	}

	if syllable.IsBasic(k[0]) && syllable.IsBasic(k[1]) && syllable.IsBasic(k[2]) {
		return uint32(k[0])<<12 | uint32(k[1])<<6 | uint32(k[2]), nil
	}

	basic, ok := c.subs.Reverse(substitution.JoinAuxiliary(k[0], k[1], k[2]))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoInput, digest)
	}

	return basic, nil
}

func tokenize(digest string) ([3]int, bool) {
	var k [3]int

candidates:
	for _, lens := range splits[len(digest)] {
		rest := digest
		for i, n := range lens {
			idx, ok := syllable.IndexOf(rest[:n])
			if !ok {
				continue candidates
			}
			k[i] = idx
			rest = rest[n:]
		}
		return k, true
	}

	return k, false
}

// SplitDigest24 separates a digest24 into its digest18 prefix and the high
// six bits carried by the numeric suffix. The full key is high<<18 | key,
// where key is the prefix decoded with ReverseDigest18.
func SplitDigest24(digest string) (string, uint8, error) {
	if len(digest) < MinDigest18Len+2 || len(digest) > MaxDigest18Len+2 {
		return "", 0, fmt.Errorf("%w: expected %d-%d characters, got %d",
			ErrInvalidDigestLength, MinDigest18Len+2, MaxDigest18Len+2, len(digest))
	}

	prefix, suffix := digest[:len(digest)-2], digest[len(digest)-2:]
	if suffix[0] < '0' || suffix[0] > '9' || suffix[1] < '0' || suffix[1] > '9' {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSuffix, suffix)
	}

	n := int(suffix[0]-'0')*10 + int(suffix[1]-'0')
	if n < 1 || n > 64 {
		return "", 0, fmt.Errorf("%w: %q outside 01-64", ErrInvalidSuffix, suffix)
	}

	return prefix, uint8(n - 1), nil
}
