package txref

import (
	"errors"
	"fmt"
)

// ErrInvalidChecksum is returned when no prefix/checksum combination
// validates under any supported bech32 variant.
var ErrInvalidChecksum = errors.New("checksum is invalid")

// RangeError reports a locator field outside its encodable range.
type RangeError struct {
	Field string
	Value uint32
	Max   uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range, maximum is %d", e.Field, e.Value, e.Max)
}

// MagicCodeError reports a magic code that does not support extended txrefs.
type MagicCodeError struct {
	MagicCode uint8
}

func (e *MagicCodeError) Error() string {
	return fmt.Sprintf("magic code %#x does not support extended txrefs", e.MagicCode)
}

// VersionError reports a data part carrying an unknown format version.
// Forward compatibility is refused rather than guessed.
type VersionError struct {
	Version uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unknown txref version %d", e.Version)
}

// DataSizeError reports a checksum-verified data part whose group count
// is neither the standard nor the extended size.
type DataSizeError struct {
	Size int
}

func (e *DataSizeError) Error() string {
	return fmt.Sprintf("decoded data part size %d is incorrect", e.Size)
}

// LengthError reports input or storage shorter than required.
type LengthError struct {
	Needed    int
	Available int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length too short: need %d, have %d", e.Needed, e.Available)
}
