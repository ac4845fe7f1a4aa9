package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Sha256Sum computes the hex-encoded SHA-256 digest of everything
// readable from r.
func Sha256Sum(r io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Sha256SumBytes computes the hex-encoded SHA-256 digest of data.
func Sha256SumBytes(data []byte) string {
	sum, _ := Sha256Sum(bytes.NewReader(data))
	return sum
}

// Sha256SumVerifyBytes compares the digest of data against an expected
// hex checksum.
func Sha256SumVerifyBytes(data []byte, checksum string) error {
	if checksum != Sha256SumBytes(data) {
		return errors.New("invalid checksum")
	}
	return nil
}
