package common

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

type MnemonicSigner struct {
	privKey  *ecdsa.PrivateKey
	pubKey   []byte
	blake160 []byte
}

var _ Signer = &MnemonicSigner{}

func NewMnemonicSigner(mnemonic string) (*MnemonicSigner, error) {
	privKey, err := PrivateKeyFromMnemonic(mnemonic, DefaultCkbHDPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create ckb private key: %w", err)
	}
	return NewPrivateKeySigner(privKey), nil
}

func NewPrivateKeySigner(privKey *ecdsa.PrivateKey) *MnemonicSigner {
	pubKey := crypto.CompressPubkey(&privKey.PublicKey)
	return &MnemonicSigner{
		privKey:  privKey,
		pubKey:   pubKey,
		blake160: Blake160(pubKey),
	}
}

func (s *MnemonicSigner) Destroy() {}

func (s *MnemonicSigner) Sign(digest []byte) ([]byte, error) {
	if len(digest) != HashLength {
		return nil, fmt.Errorf("invalid digest length: %d", len(digest))
	}
	return crypto.Sign(digest, s.privKey)
}

func (s *MnemonicSigner) PublicKey() []byte {
	return s.pubKey
}

func (s *MnemonicSigner) Blake160() []byte {
	return s.blake160
}
