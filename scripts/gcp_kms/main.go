package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dan13ram/ada-bridge/common"
)

// Main Function
func main() {
	GoogleKeyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", GoogleKeyName)
	if GoogleKeyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	signer, err := common.NewGcpKmsSigner(GoogleKeyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Public Key: ", common.BytesToHex(signer.PublicKey()))
	fmt.Println("Lock Args: ", common.BytesToHex(signer.Blake160()))

	for _, prefix := range []string{common.CkbMainnetPrefix, common.CkbTestnetPrefix} {
		address, err := common.EncodeShortAddress(prefix, signer.Blake160())
		if err != nil {
			log.Fatalf("failed to encode %s address: %v", prefix, err)
		}
		fmt.Printf("CKB Address (%s): %s\n", prefix, address)
	}

	digest := common.CkbHash([]byte("example transaction data"))
	signature, err := signer.Sign(digest[:])
	if err != nil {
		log.Fatalf("failed to sign digest: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	if !common.VerifySignature(digest[:], signature, signer.PublicKey()) {
		log.Fatalf("signature does not verify against the kms public key")
	}
	fmt.Println("Signature verified")
}
