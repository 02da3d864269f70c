package ir

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest holds the SHA-256 and BLAKE3 hashes of a canonical score text.
// Two scores with equal digests have equal canonical forms.
type Digest struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// String returns the SHA-256 hash, the primary identifier.
func (d Digest) String() string {
	return d.SHA256
}

// Short returns the first 12 characters of the SHA-256 hash.
func (d Digest) Short() string {
	if len(d.SHA256) < 12 {
		return d.SHA256
	}
	return d.SHA256[:12]
}

// HashBytes computes both digests of data.
func HashBytes(data []byte) Digest {
	s := sha256.Sum256(data)
	b := blake3.Sum256(data)
	return Digest{
		SHA256: hex.EncodeToString(s[:]),
		BLAKE3: hex.EncodeToString(b[:]),
	}
}

// HashText computes both digests of a string.
func HashText(text string) Digest {
	return HashBytes([]byte(text))
}
