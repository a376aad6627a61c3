package auth_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/adapters/auth"
	"github.com/modreg-org/modreg-cli/internal/domain"
)

func TestVerifier(t *testing.T) {
	verifier := auth.NewVerifier()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	digest := domain.AuthDigest("register", "ledger",
		common.HexToAddress("0x00000000000000000000000000000000000000A1"), 0)

	t.Run("recovers the signer", func(t *testing.T) {
		sig, err := crypto.Sign(digest.Bytes(), key)
		require.NoError(t, err)

		recovered, err := verifier.Recover(digest, sig)
		require.NoError(t, err)
		assert.Equal(t, signer, recovered)
	})

	t.Run("different digest recovers a different identity", func(t *testing.T) {
		sig, err := crypto.Sign(digest.Bytes(), key)
		require.NoError(t, err)

		other := domain.AuthDigest("register", "ledger",
			common.HexToAddress("0x00000000000000000000000000000000000000A1"), 1)
		recovered, err := verifier.Recover(other, sig)
		require.NoError(t, err)
		assert.NotEqual(t, signer, recovered)
	})

	t.Run("rejects malformed signatures", func(t *testing.T) {
		_, err := verifier.Recover(digest, []byte{0x01, 0x02})
		assert.Error(t, err)

		_, err = verifier.Recover(digest, nil)
		assert.Error(t, err)
	})
}
