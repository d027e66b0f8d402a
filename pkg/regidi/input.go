package regidi

import (
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// KeyOf reduces input to its low 64 bits. Integers of any Go integer type,
// *big.Int, []byte and uuid.UUID are accepted; byte sequences are read as
// big-endian integers. Negative numbers are rejected.
func KeyOf(input any) (uint64, error) {
	switch v := input.(type) {
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case int:
		return signed(int64(v))
	case int64:
		return signed(v)
	case int32:
		return signed(int64(v))
	case int16:
		return signed(int64(v))
	case int8:
		return signed(int64(v))
	case *big.Int:
		if v == nil {
			return 0, fmt.Errorf("%w: nil *big.Int", ErrInvalidInputType)
		}
		return bigKey(v)
	case big.Int:
		return bigKey(&v)
	case []byte:
		return bytesKey(v), nil
	case uuid.UUID:
		return bytesKey(v[:]), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidInputType, input)
	}
}

func signed(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidInputType, v)
	}
	return uint64(v), nil
}

func bigKey(v *big.Int) (uint64, error) {
	if v.Sign() < 0 {
		return 0, fmt.Errorf("%w: negative value %s", ErrInvalidInputType, v)
	}
	return bytesKey(v.Bytes()), nil
}

// bytesKey keeps the last eight bytes, which hold every bit a digest uses.
func bytesKey(b []byte) uint64 {
	if len(b) > 8 {
		b = b[len(b)-8:]
	}

	var key uint64
	for _, c := range b {
		key = key<<8 | uint64(c)
	}
	return key
}

// TextKey hashes arbitrary text to a key with xxhash64.
func TextKey(text string) uint64 {
	return xxhash.Sum64String(text)
}

// DigestText returns the digest24 of the hash of text.
func (c *Codec) DigestText(text string) string {
	return c.Digest24(TextKey(text))
}
