// Package safe provides helpers for safe numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
)

// Uint32 converts signed integers to uint32 with range validation.
func Uint32[T ~int | ~int32 | ~int64](v T) (uint32, error) {
	if v < 0 || int64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint8 converts signed integers to uint8 with range validation.
func Uint8[T ~int | ~int32 | ~int64](v T) (uint8, error) {
	if v < 0 || int64(v) > math.MaxUint8 {
		return 0, fmt.Errorf("value %d out of uint8 range", v)
	}
	return uint8(v), nil
}
