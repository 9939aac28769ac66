// Package twoscomplement converts between signed integers and fixed-width
// two's-complement bit strings (most significant bit first).
package twoscomplement

import (
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/numconv/internal/domain"
)

// MaxBitWidth is the widest representation handled exactly (int64).
const MaxBitWidth = 64

// Decode interprets bits as a two's-complement integer of len(bits) width.
// The leftmost character is the sign bit.
func Decode(bits string) (int64, error) {
	if bits == "" {
		return 0, &domain.FormatError{Pos: -1}
	}

	var raw uint64
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			raw <<= 1
		case '1':
			raw = raw<<1 | 1
		default:
			return 0, &domain.FormatError{Pos: i, Char: bits[i]}
		}
	}
	if len(bits) > MaxBitWidth {
		return 0, domain.ErrOverflow
	}

	// Sign bit set: extend it over the unused high bits. Same result as
	// inverting every bit, reading u and returning -(u+1).
	if bits[0] == '1' {
		raw |= ^mask(len(bits))
	}
	return int64(raw), nil
}

// Encode renders value as a two's-complement bit string of exactly size
// characters.
func Encode(value int64, size int) (string, error) {
	lo, hi, err := Range(size)
	if err != nil {
		return "", err
	}
	if value < lo || value > hi {
		return "", &domain.RangeError{Value: value, Size: size, Min: lo, Max: hi}
	}

	bits := strconv.FormatUint(uint64(value)&mask(size), 2)
	if pad := size - len(bits); pad > 0 {
		bits = strings.Repeat("0", pad) + bits
	}
	return bits, nil
}

// Range returns the representable interval [-2^(size-1), 2^(size-1)-1].
func Range(size int) (lo, hi int64, err error) {
	if size <= 0 {
		return 0, 0, domain.ErrInvalidSize
	}
	if size > MaxBitWidth {
		return 0, 0, domain.ErrOverflow
	}
	if size == MaxBitWidth {
		return math.MinInt64, math.MaxInt64, nil
	}
	hi = int64(1)<<(size-1) - 1
	return -hi - 1, hi, nil
}

// mask returns the low size bits set.
func mask(size int) uint64 {
	if size >= MaxBitWidth {
		return math.MaxUint64
	}
	return uint64(1)<<size - 1
}
