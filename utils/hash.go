package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const bytes32HexLen = 2 * common.HashLength

// ErrInvalidBytes32 is returned when a value cannot be used as a bytes32 argument
var ErrInvalidBytes32 = errors.New("invalid bytes32 value")

// IsTxHash reports whether s is a 0x prefixed, 32 bytes hex string.
func IsTxHash(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	s = s[2:]
	return len(s) == bytes32HexLen && isHex(s)
}

// HexToBytes32 converts a 0x prefixed hex string of at most 32 bytes into a
// bytes32 value. Shorter values are right padded with zeros, which is the layout
// produced by PrincipalToBytes32.
func HexToBytes32(s string) ([32]byte, error) {
	var out [32]byte
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return out, errors.Wrapf(ErrInvalidBytes32, "missing 0x prefix: %q", s)
	}
	body := s[2:]
	if len(body) == 0 || len(body)%2 != 0 || !isHex(body) {
		return out, errors.Wrapf(ErrInvalidBytes32, "malformed hex: %q", s)
	}
	if len(body) > bytes32HexLen {
		return out, errors.Wrapf(ErrInvalidBytes32, "longer than 32 bytes: %q", s)
	}
	copy(out[:], common.FromHex(s))
	return out, nil
}

func isHex(s string) bool {
	for _, c := range []byte(s) {
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		isUpper := c >= 'A' && c <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}
