package domain

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// AuthDigest is the message an off-chain authorizer signs to delegate one
// registry operation to a relayer. The signer's current nonce is part of the
// digest, so a captured signature cannot be replayed once the nonce advances.
func AuthDigest(op string, key string, addr common.Address, nonce uint64) common.Hash {
	var nonceBuf [8]byte
	binary.BigEndian.PutUint64(nonceBuf[:], nonce)
	return crypto.Keccak256Hash(
		[]byte("modreg/auth/v1"),
		[]byte(op),
		[]byte(key),
		addr.Bytes(),
		nonceBuf[:],
	)
}
