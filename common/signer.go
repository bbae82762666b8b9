package common

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// Signer produces secp256k1 recoverable signatures over 32 byte digests,
// in the 65 byte r || s || recovery id layout used by ckb witnesses.
type Signer interface {
	Sign(digest []byte) ([]byte, error)
	PublicKey() []byte
	Blake160() []byte
	Destroy()
}

func PrivateKeyFromMnemonic(mnemonic string, path string) (*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic, DefaultBIP39Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	derivationPath, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	account, err := wallet.Derive(derivationPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	return wallet.PrivateKey(account)
}

// VerifySignature checks a recoverable signature against a compressed public key.
func VerifySignature(digest []byte, signature []byte, pubKey []byte) bool {
	if len(signature) != SignatureLength {
		return false
	}
	recovered, err := crypto.SigToPub(digest, signature)
	if err != nil {
		return false
	}
	return string(crypto.CompressPubkey(recovered)) == string(pubKey)
}
