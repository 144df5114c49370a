package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the server hash key.
// InitHasherPool must be called before Hash or ValidHash.
var hasherPool sync.Pool

// InitHasherPool (re)creates the pool with hashKey. The server calls it once
// at startup when request signing is enabled.
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash returns the HMAC-SHA256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// ValidHash reports whether signature is the hex encoded digest of data.
// Hex case is ignored; the comparison runs in constant time.
func ValidHash(data []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) != sha256.Size {
		return false
	}
	return hmac.Equal(got, Hash(data))
}

// HashString signs data with hashKey and returns the hex digest. It does not
// touch the pool, so the client can sign request bodies without
// InitHasherPool.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
