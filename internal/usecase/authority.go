package usecase

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// authorizeCaller resolves the effective caller of a mutating operation.
// Without a signature the configured caller identity is taken at face value
// (local invocation). With one, the signature must recover to the claimed
// identity over the operation digest, and the claimed identity's nonce is
// consumed so the same signature cannot authorize a second mutation.
func authorizeCaller(
	rec *models.RegistryRecord,
	claimed common.Address,
	verifier SignatureVerifier,
	op, key string,
	addr common.Address,
	sig []byte,
) (common.Address, error) {
	if claimed == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: no caller identity configured", domain.ErrUnauthorized)
	}
	if len(sig) == 0 {
		return claimed, nil
	}

	digest := domain.AuthDigest(op, key, addr, rec.NonceOf(claimed))
	recovered, err := verifier.Recover(digest, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}
	if recovered != claimed {
		return common.Address{}, fmt.Errorf("%w: recovered %s, claimed %s",
			domain.ErrInvalidSignature, recovered.Hex(), claimed.Hex())
	}

	rec.BumpNonce(claimed)
	return claimed, nil
}
