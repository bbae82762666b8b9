package common

import (
	"bytes"
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	dcrecSecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	gax "github.com/googleapis/gax-go/v2"
)

type GCPKeyManagementClient interface {
	Close() error
	GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error)
	AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error)
	GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error)
}

type GcpKmsSigner struct {
	client   GCPKeyManagementClient
	keyName  string
	pubKey   []byte
	blake160 []byte
}

var _ Signer = &GcpKmsSigner{}

var NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
	return kms.NewKeyManagementClient(ctx)
}

func NewGcpKmsSigner(keyName string) (*GcpKmsSigner, error) {
	client, err := NewGCPKeyManagementClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create KMS client: %w", err)
	}

	keyVersionDetails, err := resolveKeyVersionDetails(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	if keyVersionDetails.Algorithm != kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256 {
		return nil, fmt.Errorf("key algorithm is not EC_SIGN_SECP256K1_SHA256")
	}

	pubKeyBytes, err := resolvePubKeyBytes(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve public key: %w", err)
	}

	secp256k1PubKey, err := getSecp256k1PubKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to get secp256k1 public key: %w", err)
	}

	pubKey := secp256k1PubKey.SerializeCompressed()

	return &GcpKmsSigner{
		client:   client,
		keyName:  keyName,
		pubKey:   pubKey,
		blake160: Blake160(pubKey),
	}, nil
}

func (s *GcpKmsSigner) Destroy() {
	s.client.Close()
}

// Sign asks KMS to sign the digest as is. KMS returns a DER signature
// without a recovery id, so the id is found by recovering against the known key.
func (s *GcpKmsSigner) Sign(digest []byte) ([]byte, error) {
	if len(digest) != HashLength {
		return nil, fmt.Errorf("invalid digest length: %d", len(digest))
	}

	req := &kmspb.AsymmetricSignRequest{
		Name: s.keyName,
		Digest: &kmspb.Digest{
			Digest: &kmspb.Digest_Sha256{
				Sha256: digest,
			},
		},
	}
	resp, err := s.client.AsymmetricSign(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("asymmetric sign operation: %w", err)
	}

	return recoverableSignature(resp.Signature, digest, s.pubKey)
}

func (s *GcpKmsSigner) PublicKey() []byte {
	return s.pubKey
}

func (s *GcpKmsSigner) Blake160() []byte {
	return s.blake160
}

func recoverableSignature(der []byte, digest []byte, pubKey []byte) ([]byte, error) {
	var params struct{ R, S *big.Int }
	_, err := asn1.Unmarshal(der, &params)
	if err != nil {
		return nil, fmt.Errorf("asymmetric signature encoding: %w", err)
	}

	var rLen, sLen int
	if params.R != nil {
		rLen = (params.R.BitLen() + 7) / 8
	}
	if params.S != nil {
		sLen = (params.S.BitLen() + 7) / 8
	}
	if rLen == 0 || rLen > 32 || sLen == 0 || sLen > 32 {
		return nil, fmt.Errorf("asymmetric signature with %d-byte r and %d-byte s denied on size", rLen, sLen)
	}

	var r, sc dcrecSecp256k1.ModNScalar
	r.SetByteSlice(params.R.Bytes())
	sc.SetByteSlice(params.S.Bytes())
	if sc.IsOverHalfOrder() {
		sc.Negate()
	}
	rBytes := r.Bytes()
	sBytes := sc.Bytes()

	// compact signature: 1-byte bitcoin header, r, s
	var compact [SignatureLength]byte
	copy(compact[1:33], rBytes[:])
	copy(compact[33:65], sBytes[:])

	for recoveryID := byte(0); recoveryID < 2; recoveryID++ {
		compact[0] = recoveryID + 27
		recovered, _, err := btcecdsa.RecoverCompact(compact[:], digest)
		if err != nil {
			continue
		}
		if bytes.Equal(recovered.SerializeCompressed(), pubKey) {
			sig := make([]byte, SignatureLength)
			copy(sig, compact[1:])
			sig[64] = recoveryID
			return sig, nil
		}
	}

	return nil, fmt.Errorf("signature public key mismatch")
}

func resolvePubKeyBytes(client GCPKeyManagementClient, keyName string) ([]byte, error) {
	publicKeyResp, err := client.GetPublicKey(context.Background(), &kmspb.GetPublicKeyRequest{Name: keyName})
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	publicKeyPem := publicKeyResp.Pem

	block, _ := pem.Decode([]byte(publicKeyPem))
	if block == nil {
		return nil, fmt.Errorf("public key %q PEM empty: %.130q", keyName, publicKeyPem)
	}

	var info struct {
		AlgID pkix.AlgorithmIdentifier
		Key   asn1.BitString
	}
	_, err = asn1.Unmarshal(block.Bytes, &info)
	if err != nil {
		return nil, fmt.Errorf("public key %q PEM block %q: %w", keyName, block.Type, err)
	}

	if gotAlg := info.AlgID.Algorithm; !gotAlg.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("public key %q ASN.1 algorithm %s instead of %s", keyName, gotAlg, oidPublicKeyECDSA)
	}

	return info.Key.Bytes, nil
}

func getSecp256k1PubKey(pubKeyBytes []byte) (*dcrecSecp256k1.PublicKey, error) {
	pubkeyObject, err := dcrecSecp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return pubkeyObject, nil
}

func resolveKeyVersionDetails(client GCPKeyManagementClient, keyName string) (*kmspb.CryptoKeyVersion, error) {
	req := &kmspb.GetCryptoKeyVersionRequest{
		Name: keyName,
	}

	resp, err := client.GetCryptoKeyVersion(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	return resp, nil
}
