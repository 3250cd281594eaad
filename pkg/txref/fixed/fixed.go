// Package fixed provides fixed-capacity variants of the txref codec for
// embedding and FFI-style hosts. Results are copied into caller-supplied
// storage, every failure is reported as a stable numeric code and no
// partial write ever reaches caller memory.
package fixed

import (
	"errors"

	"github.com/goodnatureofminers/txref/pkg/txref"
)

// Code is a stable numeric status, one value per error kind of the codec.
// Values are append-only.
type Code int32

const (
	CodeSuccess Code = iota
	CodeUnknownError
	CodeNullArgument
	CodeLengthTooShort
	CodeRange
	CodeMagicCode
	CodeVersion
	CodeChecksum
	CodeDataSize
	codeMax
)

var codeDescriptions = [...]string{
	CodeSuccess:        "success",
	CodeUnknownError:   "unknown error",
	CodeNullArgument:   "argument was nil",
	CodeLengthTooShort: "argument length was too short",
	CodeRange:          "field out of range",
	CodeMagicCode:      "magic code does not support extended txrefs",
	CodeVersion:        "unknown txref version",
	CodeChecksum:       "checksum is invalid",
	CodeDataSize:       "decoded data part size is incorrect",
}

func (c Code) String() string {
	if c < CodeSuccess || c >= codeMax {
		return codeDescriptions[CodeUnknownError]
	}
	return codeDescriptions[c]
}

// MaxEncodedLen is the storage capacity sufficient for any encoded txref.
const MaxEncodedLen = txref.MaxLength

// maxHRPLen covers the longest network prefix ("txtest").
const maxHRPLen = len(txref.HRPTest)

// Result is caller-owned storage for a decoded txref. Fixed-size fields
// mirror txref.DecodedResult; Commentary keeps its variable length since
// it is only populated on the legacy-checksum path.
type Result struct {
	Txref    [MaxEncodedLen]byte
	TxrefLen int
	HRP      [maxHRPLen]byte
	HRPLen   int

	MagicCode           uint8
	BlockHeight         uint32
	TransactionPosition uint32
	TxoIndex            uint32

	Encoding   txref.Encoding
	Commentary string
}

// EncodeTo encodes a mainnet txref into dst, returning the number of
// bytes written. A nil dst is CodeNullArgument; a dst too short for the
// result is CodeLengthTooShort and dst is left untouched.
func EncodeTo(dst []byte, blockHeight, position, txoIndex uint32, forceExtended bool, hrp string) (int, Code) {
	if dst == nil {
		return 0, CodeNullArgument
	}
	s, err := txref.Encode(blockHeight, position, txoIndex, forceExtended, hrp)
	if err != nil {
		return 0, codeFor(err)
	}
	if len(dst) < len(s) {
		return 0, CodeLengthTooShort
	}
	return copy(dst, s), CodeSuccess
}

// EncodeTestnetTo is EncodeTo with the testnet magic codes.
func EncodeTestnetTo(dst []byte, blockHeight, position, txoIndex uint32, forceExtended bool, hrp string) (int, Code) {
	if dst == nil {
		return 0, CodeNullArgument
	}
	s, err := txref.EncodeTestnet(blockHeight, position, txoIndex, forceExtended, hrp)
	if err != nil {
		return 0, codeFor(err)
	}
	if len(dst) < len(s) {
		return 0, CodeLengthTooShort
	}
	return copy(dst, s), CodeSuccess
}

// DecodeTo decodes ref into res. On any non-success code res is left
// untouched.
func DecodeTo(res *Result, ref string) Code {
	if res == nil {
		return CodeNullArgument
	}
	d, err := txref.Decode(ref)
	if err != nil {
		return codeFor(err)
	}
	if len(d.Txref) > MaxEncodedLen || len(d.HRP) > maxHRPLen {
		return CodeLengthTooShort
	}

	res.TxrefLen = copy(res.Txref[:], d.Txref)
	res.HRPLen = copy(res.HRP[:], d.HRP)
	res.MagicCode = d.MagicCode
	res.BlockHeight = d.BlockHeight
	res.TransactionPosition = d.TransactionPosition
	res.TxoIndex = d.TxoIndex
	res.Encoding = d.Encoding
	res.Commentary = d.Commentary
	return CodeSuccess
}

// codeFor translates a codec error into its stable code. No native error
// value crosses the boundary.
func codeFor(err error) Code {
	var (
		rangeErr   *txref.RangeError
		magicErr   *txref.MagicCodeError
		versionErr *txref.VersionError
		sizeErr    *txref.DataSizeError
		lengthErr  *txref.LengthError
	)
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, txref.ErrInvalidChecksum):
		return CodeChecksum
	case errors.As(err, &rangeErr):
		return CodeRange
	case errors.As(err, &magicErr):
		return CodeMagicCode
	case errors.As(err, &versionErr):
		return CodeVersion
	case errors.As(err, &sizeErr):
		return CodeDataSize
	case errors.As(err, &lengthErr):
		return CodeLengthTooShort
	default:
		return CodeUnknownError
	}
}
