package metadata

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matotam-io/matotam-core/config"
	"github.com/matotam-io/matotam-core/internal/bubble"
	"github.com/matotam-io/matotam-core/internal/log"
	"github.com/matotam-io/matotam-core/internal/msgcrypt"
	"github.com/matotam-io/matotam-core/internal/ornament"
	"github.com/matotam-io/matotam-core/internal/sigil"
	"github.com/matotam-io/matotam-core/pkg/rarity"
)

// BurnInfo is the standing instruction written into every message NFT.
const BurnInfo = "To unlock the ADA in this message NFT, burn it on matotam.io. " +
	"Burn can be done only by the sender, the receiver, or matotam."

// Description is the fixed human-readable description field.
const Description = "On-chain message sent via matotam.io"

// EncryptedPlaceholder replaces the message text on-chain when the mint
// carries an encrypted payload. The plaintext is never written.
const EncryptedPlaceholder = "(encrypted message; decrypt on matotam.io)"

// BuildParams carries everything BuildMintData needs.
type BuildParams struct {
	SenderAddr    string
	RecipientAddr string
	Message       string
	PolicyID      string

	// Encrypted, when set, switches the mint to encrypted mode: the
	// document carries the payload and a placeholder instead of text.
	Encrypted *msgcrypt.EncryptedPayload

	// Now is the mint wall-clock instant. Zero means time.Now().
	Now time.Time

	// MaxImageBytes caps the embedded data URI; an oversized image is
	// omitted entirely rather than truncated. Zero means no cap.
	MaxImageBytes int

	// Disambiguator overrides the random asset-name suffix, for
	// deterministic assembly. Empty means a fresh random value.
	Disambiguator string
}

// MintData is the assembly result: the content-addressed unit, the
// readable asset name, the quick-burn id, and the full label-721 document.
type MintData struct {
	Unit          string
	AssetNameBase string
	QuickBurnID   string
	Metadata      map[string]any
}

// SequenceSource estimates the next thread sequence number. Implemented by
// the indexer client; nil is allowed and always uses the local fallback.
type SequenceSource interface {
	PolicyAssetCount(ctx context.Context, policyID string) (int, error)
}

// BuildMintData assembles the complete on-chain document for one message.
// The only side effect is a single best-effort sequence query against seq;
// everything else is a pure function of params, so identical inputs with a
// fixed Now and Disambiguator produce byte-identical documents.
func BuildMintData(ctx context.Context, seq SequenceSource, params BuildParams) (*MintData, error) {
	if params.SenderAddr == "" || params.RecipientAddr == "" {
		return nil, fmt.Errorf("sender and recipient addresses are required")
	}
	if params.PolicyID == "" {
		return nil, fmt.Errorf("policy id is required")
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	// Thread id from the address suffixes: stable for a sender/receiver
	// pair, short enough to survive inside the asset name.
	threadID := fmt.Sprintf("matotam-%s-%s", tail(params.SenderAddr, 3), tail(params.RecipientAddr, 3))

	seqNum := sequenceNumber(ctx, seq, params.PolicyID, now)
	seqStr := fmt.Sprintf("%03d", seqNum)

	disambiguator := params.Disambiguator
	if disambiguator == "" {
		disambiguator = uuid.NewString()[:4]
	}

	assetNameBase := fmt.Sprintf("%s-%s-%s", threadID, seqStr, disambiguator)
	unit := params.PolicyID + hex.EncodeToString([]byte(assetNameBase))

	quickBurnID, err := EncodeQuickBurnID(unit)
	if err != nil {
		return nil, fmt.Errorf("encode quick-burn id: %w", err)
	}

	// Rarity, ornament and sigil all derive from the same mint instant
	// and address pair, so the preview and the on-chain artifact agree.
	rarityInfo := rarity.FromTimestamp(now, config.ProjectEpoch)
	ornamentParams := ornament.ParamsFor(params.SenderAddr, params.RecipientAddr,
		rarityInfo.ProjectYear, rarityInfo.DayInYear)
	sigilParams := sigil.ParamsFor(params.SenderAddr)

	safeMessage := SafeText(params.Message, SafeTextMaxLength)

	// In encrypted mode the image renders the placeholder, never the
	// plaintext: the SVG is percent-encoded, not encrypted, so any text
	// drawn into it is readable straight off the chain.
	displayText := safeMessage
	if params.Encrypted != nil {
		displayText = EncryptedPlaceholder
	}

	lines := bubble.Wrap(displayText, bubble.MaxLineLength, bubble.MaxLines)
	svg := bubble.BuildSVG(lines, rarityInfo.Code, ornamentParams, sigil.Fragment(sigilParams, 64))
	dataURI := bubble.DataURI(svg)

	doc := map[string]any{
		"quickBurnId": stringOrSegments(quickBurnID),

		"Burn info": Split(BurnInfo, SegmentSize),
		"Sender":    Split(params.SenderAddr, SegmentSize),
		"Receiver":  Split(params.RecipientAddr, SegmentSize),

		"Thread":       threadID,
		"Thread index": seqStr,
		"createdAt":    now.Format("2006-01-02T15:04:05.000Z"),

		"rarity": rarityInfo.Code,
		"sigil": map[string]any{
			"color":               sigilParams.Color.Label,
			"colorProbability":    probability(sigilParams.Color.Probability),
			"interior":            sigilParams.Interior.Label,
			"interiorProbability": probability(sigilParams.Interior.Probability),
			"frame":               sigilParams.Frame.Label,
			"frameProbability":    probability(sigilParams.Frame.Probability),
		},

		"name":        assetNameBase,
		"description": Description,
		"source":      config.SourceURL,
		"version":     config.MetadataVersion,
	}

	if params.Encrypted != nil {
		doc["messageMode"] = "encrypted"
		doc["Message"] = Split(EncryptedPlaceholder, SegmentSize)
		doc["matotam_encrypted"] = map[string]any{
			"version":    params.Encrypted.Version,
			"cipherText": Split(strings.Join(params.Encrypted.CipherText, ""), SegmentSize),
			"nonce":      params.Encrypted.Nonce,
			"salt":       params.Encrypted.Salt,
			"iterations": params.Encrypted.Iterations,
		}
	} else {
		doc["messageMode"] = "plaintext"
		doc["Message"] = Split(safeMessage, SegmentSize)
	}

	// Never truncate the vector document: a cut data URI renders as
	// garbage. Over the ceiling, the image is simply omitted and viewers
	// regenerate it from the address pair and timestamp.
	if params.MaxImageBytes > 0 && len(dataURI) > params.MaxImageBytes {
		log.Mint.Warn().
			Int("uri_bytes", len(dataURI)).
			Int("max_bytes", params.MaxImageBytes).
			Msg("image exceeds size ceiling, omitting from metadata")
	} else {
		doc["image"] = Split(dataURI, SegmentSize)
		doc["mediaType"] = "image/svg+xml"
	}

	metadata := SanitizeTree(map[string]any{
		params.PolicyID: map[string]any{
			assetNameBase: doc,
		},
	}).(map[string]any)

	return &MintData{
		Unit:          unit,
		AssetNameBase: assetNameBase,
		QuickBurnID:   quickBurnID,
		Metadata:      metadata,
	}, nil
}

// sequenceNumber asks the indexer for the policy's asset count and falls
// back to a coarse hour bucket when the indexer is unavailable. The value
// is an ordering hint only; uniqueness comes from the disambiguator.
func sequenceNumber(ctx context.Context, seq SequenceSource, policyID string, now time.Time) int {
	if seq != nil {
		count, err := seq.PolicyAssetCount(ctx, policyID)
		if err == nil && count >= 0 {
			return count + 1
		}
		if err != nil {
			log.Mint.Warn().Err(err).Msg("sequence query failed, using time bucket")
		}
	}
	return int(now.UTC().Unix()/3600) % 1000
}

// stringOrSegments keeps short values as a plain string and chunks only
// when the ledger ceiling forces it.
func stringOrSegments(s string) any {
	if len(s) <= SegmentSize {
		return s
	}
	return Split(s, SegmentSize)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func probability(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
