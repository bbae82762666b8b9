package common

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// EncodeShortAddress returns the short format ckb address of a
// secp256k1-blake160 lock with the given args.
func EncodeShortAddress(prefix string, args []byte) (string, error) {
	if len(args) != Blake160Length {
		return "", fmt.Errorf("invalid lock args length: %d", len(args))
	}
	payload := append([]byte{addressFormatShort, codeHashIndexSecp256k1}, args...)
	return bech32.ConvertAndEncode(prefix, payload)
}

// DecodeShortAddress returns the prefix and lock args of a short format ckb address.
func DecodeShortAddress(address string) (string, []byte, error) {
	prefix, payload, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return "", nil, fmt.Errorf("invalid ckb address: %w", err)
	}
	if prefix != CkbMainnetPrefix && prefix != CkbTestnetPrefix {
		return "", nil, fmt.Errorf("invalid ckb address prefix: %s", prefix)
	}
	if len(payload) != 2+Blake160Length || payload[0] != addressFormatShort {
		return "", nil, fmt.Errorf("unsupported ckb address format")
	}
	if payload[1] != codeHashIndexSecp256k1 {
		return "", nil, fmt.Errorf("unsupported ckb address code hash index: %d", payload[1])
	}
	return prefix, payload[2:], nil
}

// ValidateCardanoAddress checks that address is a bech32 cardano payment address.
func ValidateCardanoAddress(address string) error {
	prefix, payload, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return fmt.Errorf("invalid cardano address: %w", err)
	}
	if prefix != CardanoMainnetPrefix && prefix != CardanoTestnetPrefix {
		return fmt.Errorf("invalid cardano address prefix: %s", prefix)
	}
	if len(payload) < 29 {
		return fmt.Errorf("invalid cardano address length: %d", len(payload))
	}
	return nil
}
