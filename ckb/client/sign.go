package client

import (
	"fmt"

	"github.com/dan13ram/ada-bridge/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

func TransactionHash(tx *Transaction) ethcommon.Hash {
	return ethcommon.Hash(common.CkbHash(SerializeRawTransaction(tx)))
}

// SighashAllMessage is the digest signed by a secp256k1 blake160 lock whose
// script group spans every input, with the first witness lock zeroed.
func SighashAllMessage(tx *Transaction) ([]byte, error) {
	if len(tx.Inputs) == 0 {
		return nil, fmt.Errorf("transaction has no inputs")
	}
	if len(tx.Witnesses) < len(tx.Inputs) {
		return nil, fmt.Errorf("missing witnesses: %d inputs, %d witnesses", len(tx.Inputs), len(tx.Witnesses))
	}

	txHash := TransactionHash(tx)
	placeholder := SerializeWitnessArgs(WitnessArgs{Lock: make([]byte, common.SignatureLength)})

	hasher := common.NewCkbHasher()
	hasher.Write(txHash.Bytes())
	hasher.Write(serializeUint64(uint64(len(placeholder))))
	hasher.Write(placeholder)
	for _, witness := range tx.Witnesses[1:] {
		hasher.Write(serializeUint64(uint64(len(witness))))
		hasher.Write(witness)
	}

	message := hasher.Sum()
	return message[:], nil
}

// SignTransaction fills the first witness with a signature over the sighash all message.
func SignTransaction(tx *Transaction, signer common.Signer) error {
	message, err := SighashAllMessage(tx)
	if err != nil {
		return err
	}

	signature, err := signer.Sign(message)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	if len(signature) != common.SignatureLength {
		return fmt.Errorf("invalid signature length: %d", len(signature))
	}

	tx.Witnesses[0] = SerializeWitnessArgs(WitnessArgs{Lock: signature})
	return nil
}
