package header

import (
	"io"

	"github.com/zeebo/blake3"
)

// DigestSize is the length in bytes of a blob digest.
const DigestSize = 32

// Digest returns the BLAKE3-256 digest of everything read from r.
func Digest(r io.Reader) ([DigestSize]byte, error) {
	var sum [DigestSize]byte
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return sum, err
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
