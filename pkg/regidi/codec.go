package regidi

import (
	"fmt"
	"sync"

	"github.com/jsundh/regidi/internal/substitution"
	"github.com/jsundh/regidi/internal/syllable"
)

const (
	Mask18 = 1<<18 - 1
	Mask24 = 1<<24 - 1
)

// Codec encodes and decodes digests against one substitution table.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	subs *substitution.Index
}

// New returns a codec using subs. A nil index means no substitutions.
func New(subs *substitution.Index) *Codec {
	if subs == nil {
		subs = substitution.Empty()
	}
	return &Codec{subs: subs}
}

// Load returns a codec using the substitution table stored at path. A
// missing or malformed file is logged and leaves the codec without
// substitutions.
func Load(path string) *Codec {
	return New(substitution.LoadOrEmpty(path))
}

var defaultCodec = sync.OnceValue(func() *Codec {
	return New(substitution.Embedded())
})

// Default returns the codec backed by the substitution table shipped with
// the module. It is built on first use.
func Default() *Codec {
	return defaultCodec()
}

func (c *Codec) Substitutions() *substitution.Index {
	return c.subs
}

// Digest18 returns the three-syllable digest of the low 18 bits of key.
func (c *Codec) Digest18(key uint64) string {
	basic := uint32(key & Mask18)

	var k [3]int
	if aux, ok := c.subs.Forward(basic); ok {
		k = substitution.SplitAuxiliary(aux)
	} else {
		k = [3]int{
			int(basic>>12) & 0x3f,
			int(basic>>6) & 0x3f,
			int(basic) & 0x3f,
		}
	}

	return syllable.MustGet(k[0]) + syllable.MustGet(k[1]) + syllable.MustGet(k[2])
}

// Digest24 returns the digest18 of the low 18 bits followed by bits 18-23
// as a number from 01 to 64.
func (c *Codec) Digest24(key uint64) string {
	key &= Mask24
	return fmt.Sprintf("%s%02d", c.Digest18(key), (key>>18)+1)
}

// Digest18Of is Digest18 for any input accepted by KeyOf.
func (c *Codec) Digest18Of(input any) (string, error) {
	key, err := KeyOf(input)
	if err != nil {
		return "", err
	}
	return c.Digest18(key), nil
}

// Digest24Of is Digest24 for any input accepted by KeyOf.
func (c *Codec) Digest24Of(input any) (string, error) {
	key, err := KeyOf(input)
	if err != nil {
		return "", err
	}
	return c.Digest24(key), nil
}

func Digest18(key uint64) string {
	return Default().Digest18(key)
}

func Digest24(key uint64) string {
	return Default().Digest24(key)
}

func ReverseDigest18(digest string) (uint32, error) {
	return Default().ReverseDigest18(digest)
}
