package common

import "encoding/asn1"

const (
	Blake160Length         = 20
	CompressedPubKeyLength = 33
	SignatureLength        = 65
	HashLength             = 32
	DefaultBIP39Passphrase = ""
	DefaultCkbHDPath       = "m/44'/309'/0'/0/0"
	CkbHashPersonalization = "ckb-default-hash"
	CkbMainnetPrefix       = "ckb"
	CkbTestnetPrefix       = "ckt"
	CkbShortAddressLength  = 46
	CardanoMainnetPrefix   = "addr"
	CardanoTestnetPrefix   = "addr_test"
)

// short address payload header
const (
	addressFormatShort     byte = 0x01
	codeHashIndexSecp256k1 byte = 0x00
)

var (
	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1      = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)
