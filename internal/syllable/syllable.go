package syllable

import (
	"errors"
	"fmt"
)

const (
	// BasicCount is the number of syllables used by ordinary digests.
	BasicCount = 64
	// AuxiliaryStart is the first index reserved for substitutions.
	AuxiliaryStart = BasicCount
	// Count is the total table size.
	Count = 96
)

var ErrIndexOutOfRange = errors.New("syllable index out of range")

// Every entry is a consonant cluster followed by a single vowel, so a
// concatenation of syllables splits in exactly one way.
var table = [Count]string{
	// basic
	"ba", "cha", "do", "ka", "ma", "no", "si", "te",
	"be", "che", "fa", "ki", "me", "nu", "so", "ti",
	"bi", "chi", "fi", "ko", "mi", "pa", "su", "to",
	"bo", "cho", "fo", "la", "mo", "po", "spa", "tu",
	"bro", "chu", "ga", "le", "mu", "ra", "sta", "tra",
	"ca", "da", "gi", "li", "na", "re", "sti", "tri",
	"co", "de", "go", "lo", "ne", "ro", "sto", "tro",
	"cu", "di", "gra", "lu", "ni", "sa", "ta", "tru",

	// auxiliary, the first row is meant for the first position only
	"ha", "he", "hi", "ho", "hu", "ja", "jo", "ju",
	"bu", "du", "fe", "fu", "ge", "gu", "ke", "ku",
	"pe", "pi", "pu", "se", "ve", "vi", "vo", "za",
	"ze", "zo", "zu", "bla", "dra", "fra", "pro", "ske",
}

var index = func() map[string]int {
	m := make(map[string]int, Count)
	for i, s := range table {
		m[s] = i
	}
	return m
}()

// Get returns the syllable at index i.
func Get(i int) (string, error) {
	if i < 0 || i >= Count {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return table[i], nil
}

// MustGet is Get for indices already known to be valid, such as the
// fields sliced out of a masked key.
func MustGet(i int) string {
	s, err := Get(i)
	if err != nil {
		panic(err)
	}
	return s
}

// IndexOf returns the index of token, which must match a table entry exactly.
func IndexOf(token string) (int, bool) {
	i, ok := index[token]
	return i, ok
}

func IsBasic(i int) bool {
	return i >= 0 && i < BasicCount
}

func IsAuxiliary(i int) bool {
	return i >= AuxiliaryStart && i < Count
}

// Syllables returns a copy of the whole table in index order.
func Syllables() []string {
	out := make([]string, Count)
	copy(out, table[:])
	return out
}

// Validate reports the first entry that breaks the table's shape:
// 2-3 lowercase letters, no duplicates.
func Validate() error {
	return validate(table[:])
}

func validate(entries []string) error {
	if len(entries) != Count {
		return fmt.Errorf("table has %d entries, want %d", len(entries), Count)
	}

	seen := make(map[string]int, len(entries))
	for i, s := range entries {
		if len(s) < 2 || len(s) > 3 {
			return fmt.Errorf("syllable %d %q: length %d", i, s, len(s))
		}
		for _, c := range s {
			if c < 'a' || c > 'z' {
				return fmt.Errorf("syllable %d %q: not lowercase ascii", i, s)
			}
		}
		if prev, ok := seen[s]; ok {
			return fmt.Errorf("syllable %q at %d duplicates index %d", s, i, prev)
		}
		seen[s] = i
	}

	return nil
}
