package txref

import "strings"

// InputType is the result of classifying an arbitrary input string.
type InputType uint8

const (
	InputUnknown InputType = iota
	InputTxid
	InputAddress
	InputTxref
	InputTxrefExt
)

func (t InputType) String() string {
	switch t {
	case InputTxid:
		return "txid"
	case InputAddress:
		return "address"
	case InputTxref:
		return "txref"
	case InputTxrefExt:
		return "txref-ext"
	default:
		return "unknown"
	}
}

// Stripped string lengths for complete txrefs and for txrefs missing
// their human-readable prefix. The mainnet standard length and the
// extended no-prefix length collide at 18 characters; Classify resolves
// that collision by content inspection.
const (
	refLength           = 18 // "tx1" + 9 data + 6 checksum
	refLengthTestnet    = 22
	extRefLength        = 21
	extRefLengthTestnet = 25
	refLengthNoHRP      = 15
	extRefLengthNoHRP   = 18
)

// Classify determines whether the input looks like a transaction id, a
// bitcoin address, a standard or extended txref (with or without its
// prefix), or none of those. It never fails; unresolved input is
// InputUnknown.
func Classify(s string) InputType {
	if s == "" {
		return InputUnknown
	}

	// a full-length hex transaction hash
	if len(s) == 64 {
		return InputTxid
	}

	// legacy/testnet address prefix shape
	if s[0] == '1' || s[0] == '3' || s[0] == 'm' || s[0] == 'n' || s[0] == '2' {
		if len(s) >= 26 && len(s) < 36 {
			return InputAddress
		}
	}

	stripped := stripNonAlphanumeric(s)
	withHRP := classifyComplete(stripped)
	withoutHRP := classifyMissingHRP(stripped)

	if withHRP != InputUnknown && withoutHRP == InputUnknown {
		return withHRP
	}
	if withHRP == InputUnknown && withoutHRP != InputUnknown {
		return withoutHRP
	}

	// A mainnet standard txref and a prefix-stripped extended txref are
	// both 18 characters. Only the former starts with the mainnet prefix
	// and separator.
	if withHRP == InputTxref && withoutHRP == InputTxrefExt {
		if strings.HasPrefix(s, HRPMain+string(separator)) {
			return InputTxref
		}
		return InputTxrefExt
	}

	return InputUnknown
}

func classifyComplete(stripped string) InputType {
	switch len(stripped) {
	case refLength, refLengthTestnet:
		return InputTxref
	case extRefLength, extRefLengthTestnet:
		return InputTxrefExt
	}
	return InputUnknown
}

func classifyMissingHRP(stripped string) InputType {
	switch len(stripped) {
	case refLengthNoHRP:
		return InputTxref
	case extRefLengthNoHRP:
		return InputTxrefExt
	}
	return InputUnknown
}

// addHRPIfNeeded repairs a txref whose prefix was stripped off. The
// first data character encodes the magic code, so it identifies both the
// network and the form: 'r'/'y' are mainnet standard/extended, 'x'/'8'
// testnet standard/extended. Anything else is returned unchanged.
// Expects stripNonAlphanumeric to have been applied already.
func addHRPIfNeeded(s string) string {
	if len(s) != refLengthNoHRP && len(s) != extRefLengthNoHRP {
		return s
	}
	switch s[0] {
	case 'r', 'y':
		return HRPMain + string(separator) + s
	case 'x', '8':
		return HRPTest + string(separator) + s
	}
	return s
}
