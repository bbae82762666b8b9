package common

import (
	"encoding/hex"
	"strings"
)

func Ensure0xPrefix(str string) string {
	if strings.HasPrefix(str, "0x") {
		return str
	}
	return "0x" + str
}

func Strip0xPrefix(str string) string {
	return strings.TrimPrefix(str, "0x")
}

// NormalizeHash lower-cases a hex hash and gives it a 0x prefix.
func NormalizeHash(hash string) string {
	return Ensure0xPrefix(strings.ToLower(hash))
}

func HexToBytes(str string) ([]byte, error) {
	return hex.DecodeString(Strip0xPrefix(str))
}

func BytesToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
