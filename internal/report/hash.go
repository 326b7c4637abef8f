package report

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// Digest computes the deterministic digest of a canonical report encoding.
//
// Requirements:
//   - Must cover the canonical entry order (not recording order), so callers
//     hash the output of CanonicalJSON, never hand-built bytes.
//   - Must be stable across architectures and compilers.
//
// sha256 over the canonical bytes, hex-encoded.
func Digest(canonicalEncoding []byte) string {
	if len(canonicalEncoding) == 0 {
		return ""
	}
	sum := sha256.Sum256(canonicalEncoding)
	return hex.EncodeToString(sum[:])
}

// OutputHasher accumulates the bytes written to the output stream and
// yields their hex sha256. It is wired as an io.MultiWriter leg next to
// the real output, so hashing can never alter what is written.
type OutputHasher struct {
	h hash.Hash
}

func NewOutputHasher() *OutputHasher {
	return &OutputHasher{h: sha256.New()}
}

func (o *OutputHasher) Write(p []byte) (int, error) {
	return o.h.Write(p)
}

// Digest returns the hex sha256 of everything written so far.
func (o *OutputHasher) Digest() string {
	return hex.EncodeToString(o.h.Sum(nil))
}
