// Package txref encodes and decodes transaction position references
// (txrefs): compact, checksum-protected, human-typeable identifiers that
// compress a transaction's block height, position within the block and,
// optionally, an output index into a short string, per BIP-0136.
//
// The bech32/bech32m checksum itself comes from btcutil/bech32. New
// encodes always use bech32m; strings protected by the original bech32
// checksum still decode, flagged with an upgrade commentary.
package txref

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Magic codes and human-readable prefixes fixed by BIP-0136.
const (
	MagicMain         uint8 = 0x3
	MagicMainExtended uint8 = 0x4
	MagicTest         uint8 = 0x6
	MagicTestExtended uint8 = 0x7

	HRPMain = "tx"
	HRPTest = "txtest"
)

// MaxLength is the longest possible pretty-printed txref: a testnet
// extended reference, prefix and punctuation included. Callers needing
// fixed-capacity storage can size buffers with it.
const MaxLength = 30

// Encoding identifies which checksum variant protected a decoded txref.
type Encoding uint8

const (
	EncodingUnknown Encoding = iota
	EncodingBech32m          // current
	EncodingBech32           // legacy
)

func (e Encoding) String() string {
	switch e {
	case EncodingBech32m:
		return "bech32m"
	case EncodingBech32:
		return "bech32"
	default:
		return "unknown"
	}
}

// DecodedResult holds the outcome of decoding a txref.
type DecodedResult struct {
	// Txref is the re-prettified canonical form of the input.
	Txref string
	// HRP is the human-readable prefix actually used.
	HRP                 string
	MagicCode           uint8
	BlockHeight         uint32
	TransactionPosition uint32
	TxoIndex            uint32
	// Encoding reports which checksum variant validated the input.
	Encoding Encoding
	// Commentary is non-empty only when the legacy checksum variant was
	// detected. It embeds the same reference re-encoded under the
	// current variant.
	Commentary string
}

// Encode builds a mainnet txref for the given transaction location. When
// txoIndex is 0 and forceExtended is false the short standard form is
// produced; otherwise the extended form carrying the txo index. The hrp
// is normally HRPMain.
func Encode(blockHeight, position, txoIndex uint32, forceExtended bool, hrp string) (string, error) {
	if txoIndex == 0 && !forceExtended {
		return encodeRef(hrp, MagicMain, blockHeight, position)
	}
	return encodeExtendedRef(hrp, MagicMainExtended, blockHeight, position, txoIndex)
}

// EncodeTestnet is Encode with the testnet magic codes. The hrp is
// normally HRPTest.
func EncodeTestnet(blockHeight, position, txoIndex uint32, forceExtended bool, hrp string) (string, error) {
	if txoIndex == 0 && !forceExtended {
		return encodeRef(hrp, MagicTest, blockHeight, position)
	}
	return encodeExtendedRef(hrp, MagicTestExtended, blockHeight, position, txoIndex)
}

// Decode parses a txref in any accepted shape: pretty-printed or plain,
// with or without its prefix, protected by either checksum variant.
func Decode(ref string) (*DecodedResult, error) {
	clean := stripNonAlphanumeric(ref)
	clean = addHRPIfNeeded(clean)

	hrp, dp, version, err := bech32.DecodeGeneric(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
	}

	magicCode, blockHeight, position, txoIndex, err := unpackDataPart(dp)
	if err != nil {
		return nil, err
	}

	pretty, err := prettify(clean, len(hrp))
	if err != nil {
		return nil, err
	}

	result := &DecodedResult{
		Txref:               pretty,
		HRP:                 hrp,
		MagicCode:           magicCode,
		BlockHeight:         blockHeight,
		TransactionPosition: position,
		TxoIndex:            txoIndex,
	}

	switch version {
	case bech32.VersionM:
		result.Encoding = EncodingBech32m
	case bech32.Version0:
		result.Encoding = EncodingBech32
		updated, err := reencode(result)
		if err != nil {
			return nil, err
		}
		result.Commentary = fmt.Sprintf(
			"the txref %s uses an old checksum scheme and should be updated to %s",
			result.Txref, updated)
	default:
		result.Encoding = EncodingUnknown
	}

	return result, nil
}

// reencode rebuilds the decoded reference under the current checksum
// variant, preserving its magic code and prefix.
func reencode(r *DecodedResult) (string, error) {
	if r.MagicCode == MagicMainExtended || r.MagicCode == MagicTestExtended {
		return encodeExtendedRef(r.HRP, r.MagicCode, r.BlockHeight, r.TransactionPosition, r.TxoIndex)
	}
	return encodeRef(r.HRP, r.MagicCode, r.BlockHeight, r.TransactionPosition)
}

func encodeRef(hrp string, magicCode uint8, blockHeight, position uint32) (string, error) {
	if err := checkBlockHeight(blockHeight); err != nil {
		return "", err
	}
	if err := checkTransactionPosition(position); err != nil {
		return "", err
	}
	if err := checkMagicCode(magicCode); err != nil {
		return "", err
	}

	dp := packDataPart(magicCode, blockHeight, position, 0, false)
	plain, err := bech32.EncodeM(hrp, dp)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return prettify(plain, len(hrp))
}

func encodeExtendedRef(hrp string, magicCode uint8, blockHeight, position, txoIndex uint32) (string, error) {
	if err := checkBlockHeight(blockHeight); err != nil {
		return "", err
	}
	if err := checkTransactionPosition(position); err != nil {
		return "", err
	}
	if err := checkTxoIndex(txoIndex); err != nil {
		return "", err
	}
	if err := checkMagicCode(magicCode); err != nil {
		return "", err
	}
	if err := checkExtendedMagicCode(magicCode); err != nil {
		return "", err
	}

	dp := packDataPart(magicCode, blockHeight, position, txoIndex, true)
	plain, err := bech32.EncodeM(hrp, dp)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return prettify(plain, len(hrp))
}
