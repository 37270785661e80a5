package utils

import (
	"encoding/base32"
	"encoding/binary"
	"hash/crc32"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	// maxPrincipalLen is the maximum byte length of a principal id
	maxPrincipalLen = 29
	crcLen          = 4
)

var principalEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ErrInvalidPrincipal is returned when the textual principal cannot be decoded
var ErrInvalidPrincipal = errors.New("invalid principal")

// DecodePrincipal decodes the textual representation of a principal
// (dash separated groups of base32 characters, prefixed with a crc32 checksum)
// into its raw bytes.
func DecodePrincipal(text string) ([]byte, error) {
	raw := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(text), "-", ""))
	if raw == "" {
		return nil, errors.Wrap(ErrInvalidPrincipal, "empty principal")
	}
	decoded, err := principalEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPrincipal, "base32 decode: %v", err)
	}
	if len(decoded) < crcLen {
		return nil, errors.Wrap(ErrInvalidPrincipal, "too short")
	}
	checksum, body := binary.BigEndian.Uint32(decoded[:crcLen]), decoded[crcLen:]
	if len(body) > maxPrincipalLen {
		return nil, errors.Wrapf(ErrInvalidPrincipal, "length %d exceeds %d bytes", len(body), maxPrincipalLen)
	}
	if crc32.ChecksumIEEE(body) != checksum {
		return nil, errors.Wrap(ErrInvalidPrincipal, "checksum mismatch")
	}
	return body, nil
}

// PrincipalToBytes32 encodes a principal as the 32 bytes subaccount expected by the
// minter helper contract: the first byte holds the principal length, followed by the
// principal bytes and zero padding.
func PrincipalToBytes32(text string) ([32]byte, error) {
	var out [32]byte
	body, err := DecodePrincipal(text)
	if err != nil {
		return out, err
	}
	out[0] = byte(len(body))
	copy(out[1:], body)
	return out, nil
}

// PrincipalToDepositAddress returns the 0x prefixed hex form of PrincipalToBytes32.
func PrincipalToDepositAddress(text string) (string, error) {
	b, err := PrincipalToBytes32(text)
	if err != nil {
		return "", err
	}
	return "0x" + common.Bytes2Hex(b[:]), nil
}
