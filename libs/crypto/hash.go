package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hash returns the sha3-256 digest of the given key.
func Hash(key []byte) []byte {
	hasher := sha3.New256()
	hasher.Write(key)
	return hasher.Sum(nil)
}

// HashToHex returns the sha3-256 digest of the given key, hex encoded.
func HashToHex(key []byte) string {
	return hex.EncodeToString(Hash(key))
}

// RandomHash returns a random hash, hex encoded. Handy to generate
// trace identifiers.
func RandomHash() string {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return hex.EncodeToString(Hash(data))
}
