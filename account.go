package awsid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// minKeyIDLen is the shortest key ID that can still carry a full
	// account ID: the 4-character prefix plus enough base32 characters
	// to decode to the 6 bytes the extraction reads.
	minKeyIDLen = 14

	// accountMask and accountShift select bits 7..46 of the 48-bit
	// window read from the decoded payload. The bits outside the mask
	// are reserved by the encoding and not part of the account ID.
	accountMask  = uint64(0x7FFFFFFFFF80)
	accountShift = 7
)

// AccountID extracts the AWS account ID embedded in an access key ID and
// returns it as a decimal string. It works for any modern key ID whose
// prefix begins with "A" (see ResourceType for the full prefix list);
// older key IDs beginning with "I" or "J" use a different layout and are
// not supported.
//
// Failures are reported as ErrTooShort when the input cannot hold an
// account ID and ErrInvalidEncoding when the payload is not valid base32.
func AccountID(keyID string) (string, error) {
	keyID = strings.TrimSpace(keyID)
	if len(keyID) < minKeyIDLen {
		return "", fmt.Errorf("%w: need at least %d characters, got %d", ErrTooShort, minKeyIDLen, len(keyID))
	}

	decoded, err := decodeBase32(strings.ToUpper(keyID[prefixLen:]))
	if err != nil {
		return "", err
	}
	if len(decoded) < 6 {
		return "", fmt.Errorf("%w: payload decodes to %d bytes, need at least 6", ErrTooShort, len(decoded))
	}

	// First 6 decoded bytes as a big-endian 48-bit integer.
	var z uint64
	for _, b := range decoded[:6] {
		z = z<<8 | uint64(b)
	}

	return strconv.FormatUint((z&accountMask)>>accountShift, 10), nil
}

// decodeBase32 decodes the unpadded base32 variant used by AWS key IDs:
// 'A'..'Z' map to 0..25 and '2'..'7' to 26..31. There is no '='
// padding; instead the bits left over after the final character must be
// fewer than five and all zero.
func decodeBase32(payload string) ([]byte, error) {
	decoded := make([]byte, 0, len(payload)*5/8)

	var buf uint32
	bits := 0
	for i := 0; i < len(payload); i++ {
		var v uint32
		switch c := payload[i]; {
		case c >= 'A' && c <= 'Z':
			v = uint32(c - 'A')
		case c >= '2' && c <= '7':
			v = uint32(c-'2') + 26
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidEncoding, c)
		}

		buf = buf<<5 | v
		bits += 5
		if bits >= 8 {
			bits -= 8
			decoded = append(decoded, byte(buf>>bits))
			buf &= 1<<bits - 1
		}
	}

	if bits >= 5 || buf != 0 {
		return nil, fmt.Errorf("%w: trailing bits do not form a whole byte", ErrInvalidEncoding)
	}

	return decoded, nil
}
