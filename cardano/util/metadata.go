package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano/client"
	"github.com/dan13ram/ada-bridge/common"
)

const (
	// hex length of a ckb burn tx hash inside a payload
	BurnHashWidth = 64
	// max bytes of a single cardano metadata string
	MetadataChunkSize = 64
)

// EncodeBurnHashes concatenates the hashes without a separator.
func EncodeBurnHashes(hashes []string) string {
	var sb strings.Builder
	for _, hash := range hashes {
		sb.WriteString(strings.ToLower(common.Strip0xPrefix(hash)))
	}
	return sb.String()
}

// DecodeBurnHashes splits a payload into hashes in order. It returns nothing
// unless the payload length is a multiple of the hash width.
func DecodeBurnHashes(payload string) []string {
	if len(payload) == 0 || len(payload)%BurnHashWidth != 0 {
		return []string{}
	}
	hashes := make([]string, 0, len(payload)/BurnHashWidth)
	for i := 0; i < len(payload); i += BurnHashWidth {
		hashes = append(hashes, payload[i:i+BurnHashWidth])
	}
	return hashes
}

// DecodeRecipient reads the ckb recipient from the start of a lock payload.
func DecodeRecipient(payload string) (string, error) {
	if len(payload) < common.CkbShortAddressLength {
		return "", fmt.Errorf("payload too short for a ckb address: %d", len(payload))
	}
	recipient := payload[:common.CkbShortAddressLength]

	prefix, _, err := common.DecodeShortAddress(recipient)
	if err != nil {
		return "", err
	}
	if app.Config.Ckb.AddressPrefix != "" && prefix != app.Config.Ckb.AddressPrefix {
		return "", fmt.Errorf("ckb address prefix mismatch: expected %s, got %s", app.Config.Ckb.AddressPrefix, prefix)
	}
	return recipient, nil
}

func MetadataChunks(payload string) []string {
	chunks := []string{}
	for len(payload) > MetadataChunkSize {
		chunks = append(chunks, payload[:MetadataChunkSize])
		payload = payload[MetadataChunkSize:]
	}
	if payload != "" {
		chunks = append(chunks, payload)
	}
	return chunks
}

func JoinMetadata(value client.TxMetadataValue) string {
	if value.String != "" {
		return value.String
	}
	var sb strings.Builder
	for _, item := range value.List {
		sb.WriteString(item.String)
	}
	return sb.String()
}

// BridgeMetadata writes payload under label as a list of chunks.
func BridgeMetadata(label uint64, payload string) client.TxMetadata {
	if payload == "" {
		return nil
	}
	list := []client.TxMetadataValue{}
	for _, chunk := range MetadataChunks(payload) {
		list = append(list, client.TxMetadataValue{String: chunk})
	}
	return client.TxMetadata{
		strconv.FormatUint(label, 10): client.TxMetadataValue{List: list},
	}
}

// MetadataPayload reads the payload stored under label, empty when missing.
func MetadataPayload(metadata client.TxMetadata, label uint64) string {
	if metadata == nil {
		return ""
	}
	value, ok := metadata[strconv.FormatUint(label, 10)]
	if !ok {
		return ""
	}
	return JoinMetadata(value)
}
