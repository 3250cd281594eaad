package txref

import "strings"

const (
	// maxHRPLength is the bech32 limit on human-readable prefix length.
	maxHRPLength = 83

	separator = '1' // bech32 prefix/data separator
	colon     = ':'
	hyphen    = '-'

	// groupWidth is the number of characters between hyphens in a
	// pretty-printed txref.
	groupWidth = 4
)

// addGroupSeparators inserts a hyphen after every groupWidth characters
// following the prefix. The number of separators inserted is
// (len(raw)-hrpLen-1)/groupWidth.
func addGroupSeparators(raw string, hrpLen int) (string, error) {
	if hrpLen > maxHRPLength {
		return "", &LengthError{Needed: maxHRPLength, Available: hrpLen}
	}
	if len(raw) < 2 {
		return "", &LengthError{Needed: 2, Available: len(raw)}
	}
	if len(raw) == hrpLen {
		// no body to separate
		return raw, nil
	}
	if len(raw) < hrpLen {
		return "", &LengthError{Needed: hrpLen, Available: len(raw)}
	}

	numSeparators := (len(raw) - hrpLen - 1) / groupWidth

	var b strings.Builder
	b.Grow(len(raw) + numSeparators)
	b.WriteString(raw[:hrpLen])
	for i, c := range []byte(raw[hrpLen:]) {
		if i > 0 && i%groupWidth == 0 {
			b.WriteByte(hyphen)
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// prettify inserts a colon after the prefix and bech32 separator, then
// hyphens every groupWidth characters after that.
func prettify(plain string, hrpLen int) (string, error) {
	if len(plain) < hrpLen+1 {
		return "", &LengthError{Needed: hrpLen + 1, Available: len(plain)}
	}
	withColon := plain[:hrpLen+1] + string(colon) + plain[hrpLen+1:]
	return addGroupSeparators(withColon, hrpLen+2)
}

// stripNonAlphanumeric removes every character that is not a letter or a
// digit, such as the hyphens and colon added by prettify. Idempotent.
func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range []byte(s) {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
