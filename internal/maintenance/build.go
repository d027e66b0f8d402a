package maintenance

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/jsundh/regidi/internal/keyspace"
	"github.com/jsundh/regidi/internal/substitution"
	"github.com/jsundh/regidi/pkg/regidi"
)

var ErrAuxiliaryExhausted = errors.New("not enough clean auxiliary digests")

// BuildSubstitutions maps every basic key whose digest contains one of words
// to the next clean auxiliary key, both taken in enumeration order.
func BuildSubstitutions(ctx context.Context, words []string, firstOnly int) ([]substitution.Pair, error) {
	aux, err := keyspace.Auxiliary(firstOnly)
	if err != nil {
		return nil, err
	}

	next, stop := iter.Pull(clean(aux, words))
	defer stop()

	var pairs []substitution.Pair
	n := 0
	for key, digest := range keyspace.Basic().All() {
		if n++; n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if _, ok := Match(digest, words); !ok {
			continue
		}

		auxKey, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: ran out after %d substitutions", ErrAuxiliaryExhausted, len(pairs))
		}

		pairs = append(pairs, substitution.Pair{Basic: key, Auxiliary: auxKey})
	}

	slog.Info("substitutions built",
		slog.Int("count", len(pairs)),
		slog.Uint64("auxiliary_space", aux.Size()),
	)

	return pairs, nil
}

// clean yields the keys of space whose digests contain none of words.
func clean(space *keyspace.Space, words []string) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for key, digest := range space.All() {
			if _, bad := Match(digest, words); bad {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}

// Violation is a key whose digest still contains a word.
type Violation struct {
	Key    uint32
	Digest string
	Word   string
}

// Validate returns every basic key whose digest under codec contains a word.
func Validate(codec *regidi.Codec, words []string) []Violation {
	var out []Violation
	for key := uint32(0); key <= regidi.Mask18; key++ {
		digest := codec.Digest18(uint64(key))
		if w, ok := Match(digest, words); ok {
			out = append(out, Violation{Key: key, Digest: digest, Word: w})
		}
	}
	return out
}
