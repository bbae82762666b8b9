package app

import (
	"fmt"

	"github.com/dan13ram/ada-bridge/common"
)

var commonNewGcpKmsSigner = common.NewGcpKmsSigner

// CreateCkbSigner prefers the KMS key over the mnemonic when both are set.
func CreateCkbSigner() (common.Signer, error) {
	config := Config.Ckb
	if config.Mnemonic == "" && config.GcpKmsKeyName == "" {
		return nil, fmt.Errorf("both Mnemonic and GcpKmsKeyName are empty")
	}

	if config.GcpKmsKeyName != "" {
		signer, err := commonNewGcpKmsSigner(config.GcpKmsKeyName)
		if err != nil {
			return nil, fmt.Errorf("error initializing ckb kms signer: %w", err)
		}
		return signer, nil
	}

	signer, err := common.NewMnemonicSigner(config.Mnemonic)
	if err != nil {
		return nil, fmt.Errorf("error initializing ckb mnemonic signer: %w", err)
	}
	return signer, nil
}

func CkbAddress(signer common.Signer) (string, error) {
	return common.EncodeShortAddress(Config.Ckb.AddressPrefix, signer.Blake160())
}
