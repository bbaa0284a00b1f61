// Package metadata assembles and parses the on-chain message document.
//
// The target ledger caps every metadata string at 64 characters and the
// whole attachment at a per-transaction ceiling, so long values travel as
// fixed-width segment arrays. This package owns the document shape on both
// the write path (BuildMintData) and the read path (ParseInboxMessage),
// including the historical schema versions that remain on-chain forever.
package metadata

// SegmentSize is the ledger's per-string character ceiling.
const SegmentSize = 64

// Split slices text into fixed-width segments of at most size characters.
// No word-boundary awareness; joining the segments restores the input
// exactly. Splitting is byte-wise, which is safe because every segmented
// value is ASCII by construction (sanitized text, base64, data URIs).
func Split(text string, size int) []string {
	if text == "" || size <= 0 {
		return nil
	}
	segments := make([]string, 0, (len(text)+size-1)/size)
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		segments = append(segments, text[i:end])
	}
	return segments
}

// joinSegments flattens a metadata value that may be a single string, a
// []string, or a JSON-decoded []any of strings. Unknown shapes yield "".
func joinSegments(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		joined := ""
		for _, s := range val {
			joined += s
		}
		return joined
	case []any:
		joined := ""
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return ""
			}
			joined += s
		}
		return joined
	default:
		return ""
	}
}
