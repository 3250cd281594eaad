package txref

// Field ranges fixed by the txref wire format (BIP-0136).
const (
	MaxBlockHeight         = 0xFFFFFF // 24 bits
	MaxTransactionPosition = 0x7FFF   // 15 bits
	MaxTxoIndex            = 0x7FFF   // 15 bits
	MaxMagicCode           = 0x1F     // one 5-bit group
)

func checkBlockHeight(blockHeight uint32) error {
	if blockHeight > MaxBlockHeight {
		return &RangeError{Field: "block height", Value: blockHeight, Max: MaxBlockHeight}
	}
	return nil
}

func checkTransactionPosition(position uint32) error {
	if position > MaxTransactionPosition {
		return &RangeError{Field: "transaction position", Value: position, Max: MaxTransactionPosition}
	}
	return nil
}

func checkTxoIndex(txoIndex uint32) error {
	if txoIndex > MaxTxoIndex {
		return &RangeError{Field: "txo index", Value: txoIndex, Max: MaxTxoIndex}
	}
	return nil
}

func checkMagicCode(magicCode uint8) error {
	if magicCode > MaxMagicCode {
		return &RangeError{Field: "magic code", Value: uint32(magicCode), Max: MaxMagicCode}
	}
	return nil
}

// checkExtendedMagicCode rejects building an extended reference under a
// standard magic code.
func checkExtendedMagicCode(magicCode uint8) error {
	if magicCode != MagicMainExtended && magicCode != MagicTestExtended {
		return &MagicCodeError{MagicCode: magicCode}
	}
	return nil
}
