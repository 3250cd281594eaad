package txref

// Data part group counts. Each group holds 5 bits.
const (
	dataSize         = 9
	dataExtendedSize = 12
)

// packDataPart lays the validated fields out across 5-bit groups:
// group 0 is the magic code, group 1 bit 0 is the format version (always
// 0 on encode), the rest of groups 1-5 carry the 24-bit block height
// little-endian, groups 6-8 the 15-bit transaction position and, for the
// extended size, groups 9-11 the 15-bit txo index.
func packDataPart(magicCode uint8, blockHeight, position, txoIndex uint32, extended bool) []byte {
	size := dataSize
	if extended {
		size = dataExtendedSize
	}
	dp := make([]byte, size)

	dp[0] = magicCode

	// version bit (dp[1] bit 0) stays 0
	dp[1] |= byte(blockHeight&0xF) << 1
	dp[2] = byte((blockHeight & 0x1F0) >> 4)
	dp[3] = byte((blockHeight & 0x3E00) >> 9)
	dp[4] = byte((blockHeight & 0x7C000) >> 14)
	dp[5] = byte((blockHeight & 0xF80000) >> 19)

	dp[6] = byte(position & 0x1F)
	dp[7] = byte((position & 0x3E0) >> 5)
	dp[8] = byte((position & 0x7C00) >> 10)

	if extended {
		dp[9] = byte(txoIndex & 0x1F)
		dp[10] = byte((txoIndex & 0x3E0) >> 5)
		dp[11] = byte((txoIndex & 0x7C00) >> 10)
	}
	return dp
}

// unpackDataPart reassembles the locator fields from a checksum-verified
// data part. The standard size has no txo index group, so the index is
// reported as 0. A nonzero version bit fails rather than misreading the
// remaining fields.
func unpackDataPart(dp []byte) (magicCode uint8, blockHeight, position, txoIndex uint32, err error) {
	if len(dp) != dataSize && len(dp) != dataExtendedSize {
		return 0, 0, 0, 0, &DataSizeError{Size: len(dp)}
	}

	magicCode = dp[0]

	if version := dp[1] & 0x1; version != 0 {
		return 0, 0, 0, 0, &VersionError{Version: version}
	}

	blockHeight = uint32(dp[1]) >> 1
	blockHeight |= uint32(dp[2]) << 4
	blockHeight |= uint32(dp[3]) << 9
	blockHeight |= uint32(dp[4]) << 14
	blockHeight |= uint32(dp[5]) << 19

	position = uint32(dp[6])
	position |= uint32(dp[7]) << 5
	position |= uint32(dp[8]) << 10

	if len(dp) == dataExtendedSize {
		txoIndex = uint32(dp[9])
		txoIndex |= uint32(dp[10]) << 5
		txoIndex |= uint32(dp[11]) << 10
	}
	return magicCode, blockHeight, position, txoIndex, nil
}
