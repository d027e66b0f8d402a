package format

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/jsundh/regidi/pkg/regidi"
	"golang.org/x/text/cases"
)

const (
	Int  = "int"
	Hex  = "hex"
	UUID = "uuid"
	Text = "text"
)

var ErrUnknownFormat = errors.New("unknown format")
var ErrInvalidKey = errors.New("invalid key")

// InputFormats lists the formats accepted by ParseKey.
var InputFormats = []string{Hex, Int, UUID, Text}

// OutputFormats lists the formats accepted by FormatKey.
var OutputFormats = []string{Hex, Int}

// ParseKey converts one line of user input into a key. Numbers may be wider
// than 64 bits; only the low bits matter to a digest.
func ParseKey(s string, format string) (uint64, error) {
	s = strings.TrimSpace(s)

	switch format {
	case Int:
		return parseBig(s, 10)
	case Hex:
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		return parseBig(s, 16)
	case UUID:
		id, err := uuid.Parse(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		return regidi.KeyOf(id)
	case Text:
		return regidi.TextKey(s), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseBig(s string, base int) (uint64, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a base %d number", ErrInvalidKey, s, base)
	}

	key, err := regidi.KeyOf(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

func FormatKey(key uint64, format string) (string, error) {
	switch format {
	case Int:
		return fmt.Sprintf("%d", key), nil
	case Hex:
		return fmt.Sprintf("%#x", key), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Normalize trims and case-folds a digest typed by a person.
func Normalize(digest string) string {
	// a Caser keeps state and cannot be shared between goroutines
	return cases.Fold().String(strings.TrimSpace(digest))
}

// Reverse decodes a digest18 or, when it ends in two digits, a digest24.
// It returns the key and the number of bits it carries.
func Reverse(codec *regidi.Codec, digest string) (uint64, int, error) {
	digest = Normalize(digest)

	if n := len(digest); n < 2 || !isDigit(digest[n-1]) || !isDigit(digest[n-2]) {
		key, err := codec.ReverseDigest18(digest)
		return uint64(key), 18, err
	}

	prefix, high, err := regidi.SplitDigest24(digest)
	if err != nil {
		return 0, 24, err
	}

	low, err := codec.ReverseDigest18(prefix)
	if err != nil {
		return 0, 24, err
	}

	return uint64(high)<<18 | uint64(low), 24, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
