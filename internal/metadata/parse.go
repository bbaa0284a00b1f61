package metadata

import (
	"strings"

	"github.com/matotam-io/matotam-core/config"
	"github.com/matotam-io/matotam-core/internal/msgcrypt"
)

// Message is the reconstructed view of one on-chain message asset.
type Message struct {
	Unit        string
	PolicyID    string
	AssetName   string
	Fingerprint string

	FullText    string
	TextPreview string
	MessageMode string

	FromAddress string
	ToAddress   string

	ThreadID    string
	ThreadIndex string
	CreatedAt   string
	RarityCode  string

	ImageDataURI string
	QuickBurnID  string
}

const previewLength = 80

// ParseInboxMessage reconstructs a message from an asset's on-chain
// metadata, or returns nil when the asset does not belong to this service.
//
// Several schema versions coexist on-chain permanently, so every field is
// resolved through an ordered fallback chain and any subset may be absent.
// Message text, newest first: Message segments, base64-encoded segments,
// legacy plain segments, legacy single string, then description or name.
func ParseInboxMessage(unit, policyID, assetName, fingerprint string, meta map[string]any) *Message {
	if meta == nil {
		return nil
	}

	name := stringField(meta, "name")
	desc := stringField(meta, "description", "Description")
	source := stringField(meta, "source", "Source")
	version := stringField(meta, "version")

	ours := strings.Contains(strings.ToLower(source), "matotam.io") ||
		strings.HasPrefix(version, config.MetadataVersionPrefix) ||
		strings.Contains(strings.ToLower(name), "matotam") ||
		strings.Contains(strings.ToLower(desc), "matotam")
	if !ours {
		return nil
	}

	fullText := ""
	switch {
	case isArray(meta["Message"]):
		fullText = joinSegments(meta["Message"])
	case isArray(meta["messageEncodedSegments"]):
		if decoded, err := DecodeBase64(joinSegments(meta["messageEncodedSegments"])); err == nil {
			fullText = decoded
		}
	case isArray(meta["messageSegments"]):
		fullText = joinSegments(meta["messageSegments"])
	default:
		if s, ok := meta["message"].(string); ok {
			fullText = s
		} else if desc != "" {
			fullText = desc
		} else {
			fullText = name
		}
	}

	fromAddress := joinSegments(meta["Sender"])
	if fromAddress == "" {
		fromAddress = joinSegments(meta["fromAddressSegments"])
	}
	toAddress := joinSegments(meta["Receiver"])
	if toAddress == "" {
		toAddress = joinSegments(meta["toAddressSegments"])
	}

	mode := "plaintext"
	if stringField(meta, "messageMode") == "encrypted" {
		mode = "encrypted"
	}

	return &Message{
		Unit:         unit,
		PolicyID:     policyID,
		AssetName:    assetName,
		Fingerprint:  fingerprint,
		FullText:     fullText,
		TextPreview:  preview(fullText, name),
		MessageMode:  mode,
		FromAddress:  fromAddress,
		ToAddress:    toAddress,
		ThreadID:     stringField(meta, "Thread"),
		ThreadIndex:  stringField(meta, "Thread index"),
		CreatedAt:    stringField(meta, "createdAt"),
		RarityCode:   stringField(meta, "rarity"),
		ImageDataURI: joinSegments(meta["image"]),
		QuickBurnID:  joinSegments(meta["quickBurnId"]),
	}
}

// ExtractEncryptedPayload pulls the encrypted payload out of an asset's
// metadata, joining chunked fields. Returns nil when the asset carries no
// payload or the shape is unusable.
func ExtractEncryptedPayload(meta map[string]any) *msgcrypt.EncryptedPayload {
	raw, ok := meta["matotam_encrypted"].(map[string]any)
	if !ok {
		return nil
	}
	cipherText := joinSegments(raw["cipherText"])
	if cipherText == "" {
		return nil
	}
	iterations := 0
	switch v := raw["iterations"].(type) {
	case float64:
		iterations = int(v)
	case int:
		iterations = v
	case int64:
		iterations = int(v)
	}
	return &msgcrypt.EncryptedPayload{
		Version:    stringField(raw, "version"),
		CipherText: []string{cipherText},
		Nonce:      joinSegments(raw["nonce"]),
		Salt:       joinSegments(raw["salt"]),
		Iterations: iterations,
	}
}

func preview(fullText, name string) string {
	runes := []rune(fullText)
	if len(runes) > previewLength {
		return string(runes[:previewLength-3]) + "..."
	}
	if fullText == "" {
		return name
	}
	return fullText
}

func stringField(meta map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := meta[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func isArray(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	default:
		return false
	}
}
