package auth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Verifier recovers secp256k1 signers of authorization digests.
type Verifier struct{}

// NewVerifier creates a new signature verifier
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Recover returns the address that produced sig over digest. sig is the
// 65-byte [R || S || V] form produced by crypto.Sign.
func (*Verifier) Recover(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}

	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
