package metadata

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeQuickBurnID derives the short, reversible burn reference from a
// unit: the unit's bytes as unpadded base64url. Non-hex or odd-length input
// is a programming error and fails loudly.
func EncodeQuickBurnID(unitHex string) (string, error) {
	raw, err := hex.DecodeString(unitHex)
	if err != nil {
		return "", fmt.Errorf("invalid unit hex for quick-burn id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeQuickBurnID recovers the unit hex (lowercase) from a quick-burn id.
// The id may arrive whole or as previously chunked segments; all parts are
// joined before decoding. Malformed input returns "" rather than an error,
// since ids routinely originate from untrusted paste-in.
func DecodeQuickBurnID(parts ...string) string {
	raw := strings.Join(parts, "")
	if raw == "" {
		return ""
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		ok := c >= 'A' && c <= 'Z' ||
			c >= 'a' && c <= 'z' ||
			c >= '0' && c <= '9' ||
			c == '-' || c == '_'
		if !ok {
			return ""
		}
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(data)
}

// QuickBurnInput classifies a pasted burn reference.
type QuickBurnInput struct {
	// Unit is the resolved unit hex, or "" when the input did not contain
	// one directly.
	Unit string
	// FingerprintLike reports that the input looks like an asset1...
	// fingerprint, which needs an indexer lookup to resolve to a unit.
	FingerprintLike bool
}

// ParseQuickBurnInput accepts the forms users actually paste: an explorer
// URL (last path segment taken), an asset fingerprint, or raw unit hex.
// Anything else yields the zero value.
func ParseQuickBurnInput(rawInput string) QuickBurnInput {
	id := strings.TrimSpace(rawInput)
	if id == "" {
		return QuickBurnInput{}
	}

	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		parts := strings.Split(id, "/")
		id = parts[len(parts)-1]
		if id == "" {
			return QuickBurnInput{}
		}
	}

	if isFingerprint(id) {
		return QuickBurnInput{FingerprintLike: true}
	}
	if isHex(id) {
		return QuickBurnInput{Unit: id}
	}
	return QuickBurnInput{}
}

func isFingerprint(s string) bool {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "asset1") || len(lower) == len("asset1") {
		return false
	}
	for _, c := range lower[len("asset1"):] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
