package ident

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// FingerprintLen is the number of hex characters kept from the SHA256 digest
// when fingerprinting a generation request.
const FingerprintLen = 16

const paperIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// Fingerprint derives the deterministic fingerprint of a generation request.
// The claim is lowercased and whitespace-normalized so trivially different
// spellings of the same claim collapse to one paper.
func Fingerprint(claim, template, length, voice, tone string, chartCount int, lockSeed bool) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(claim)), " ")
	seed := 0
	if lockSeed {
		seed = 1
	}
	data := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d", normalized, template, length, voice, tone, chartCount, seed)
	return SHA256Hex(data)[:FingerprintLen]
}

// NewPaperID generates a paper ID like "TMB-8F21C".
func NewPaperID() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	for i := range b {
		b[i] = paperIDChars[int(b[i])%len(paperIDChars)]
	}
	return "TMB-" + string(b)
}

// NewToken returns a URL-safe random token built from byteLen random bytes.
// Share links use 32 bytes, gallery post IDs use 8.
func NewToken(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// HashIPForLog produces a short, irreversible hash prefix of an IP address
// for log correlation without storing raw PII.
func HashIPForLog(ip string) string {
	return SHA256Hex(ip)[:12]
}
