package service

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprinter derives a stable, non-reversible identifier for a caller
// (email or merchant user id) so audit rows never hold the raw value.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter creates a keyed BLAKE2b-256 fingerprinter. Keys longer
// than 64 bytes are hashed down first. An empty key returns nil: an unkeyed
// hash of an email can be reversed by guessing, so no hash is produced.
func NewFingerprinter(key string) *Fingerprinter {
	if key == "" {
		return nil
	}
	k := []byte(key)
	if len(k) > blake2b.Size {
		sum := blake2b.Sum256(k)
		k = sum[:]
	}
	return &Fingerprinter{key: k}
}

// Fingerprint returns the hex digest of value, or "" for an empty value or
// a nil Fingerprinter.
func (f *Fingerprinter) Fingerprint(value string) string {
	if f == nil || value == "" {
		return ""
	}
	h, _ := blake2b.New256(f.key) // key length bounded in NewFingerprinter
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
