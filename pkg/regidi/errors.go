package regidi

import "errors"

var ErrInvalidInputType = errors.New("input must be a non-negative integer or a byte sequence")
var ErrInvalidDigestLength = errors.New("invalid digest length")
var ErrUnresolvableSplit = errors.New("no valid syllable split")
var ErrInvalidSuffix = errors.New("invalid digest24 suffix")

// ErrNoInput is returned for well-formed digests that no key encodes to.
var ErrNoInput = errors.New("no input found for digest")
