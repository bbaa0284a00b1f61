package metadata

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SafeTextMaxLength is the default ceiling for sanitized message text.
const SafeTextMaxLength = 256

// EncodeBase64 encodes UTF-8 text as standard base64. Round-trip exact for
// arbitrary Unicode, including multi-byte emoji.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 is the inverse of EncodeBase64.
func DecodeBase64(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64 text: %w", err)
	}
	return string(data), nil
}

// SafeText produces the lossy, ledger-safe rendition of a message: trim,
// truncate to maxLength runes, drop every byte outside printable ASCII
// (0x20-0x7E), and turn double quotes into single quotes so downstream JSON
// consumers never need escaping. One-directional; never use it where exact
// round-trip matters.
func SafeText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	trimmed := strings.TrimSpace(text)
	if runes := []rune(trimmed); len(runes) > maxLength {
		trimmed = string(runes[:maxLength])
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		switch {
		case r == '"':
			b.WriteByte('\'')
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		}
	}
	return b.String()
}
