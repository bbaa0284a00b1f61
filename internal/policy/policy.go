// Package policy builds the any-of minting policy shared by the sender,
// the receiver, and the service. Any of the three credentials can
// authorize a mint or burn, which is what makes "burn to unlock" work for
// both sides of a conversation.
package policy

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

// credentialSize is the byte length of a payment credential hash.
const credentialSize = 28

// Script is the native any-of script: a mint or burn is valid when signed
// by at least one listed credential.
type Script struct {
	Type    string      `json:"type"`
	Scripts []SigScript `json:"scripts"`
}

// SigScript requires a signature from one payment credential.
type SigScript struct {
	Type    string `json:"type"`
	KeyHash string `json:"keyHash"`
}

// Policy pairs the script with its derived id.
type Policy struct {
	Script Script
	ID     string
}

// CredentialFromAddress derives a payment credential hash from a bech32ish
// address string. Content-derived: BLAKE3 of the address bytes, truncated
// to the credential size.
func CredentialFromAddress(address string) string {
	sum := blake3.Sum256([]byte(address))
	return hex.EncodeToString(sum[:credentialSize])
}

// Build assembles the any-of policy for a sender/receiver pair plus the
// service credential. The id is content-derived from the canonical script
// encoding, so the same three credentials always yield the same policy id
// regardless of argument order.
func Build(senderAddr, recipientAddr, serviceAddr string) (*Policy, error) {
	if senderAddr == "" || recipientAddr == "" || serviceAddr == "" {
		return nil, fmt.Errorf("all three policy addresses are required")
	}

	hashes := []string{
		CredentialFromAddress(senderAddr),
		CredentialFromAddress(recipientAddr),
		CredentialFromAddress(serviceAddr),
	}
	sort.Strings(hashes)

	script := Script{Type: "any"}
	for _, h := range hashes {
		script.Scripts = append(script.Scripts, SigScript{Type: "sig", KeyHash: h})
	}

	id, err := scriptID(script)
	if err != nil {
		return nil, err
	}
	return &Policy{Script: script, ID: id}, nil
}

// scriptID hashes the canonical JSON encoding of the script.
func scriptID(script Script) (string, error) {
	encoded, err := json.Marshal(script)
	if err != nil {
		return "", fmt.Errorf("encode policy script: %w", err)
	}
	sum := blake3.Sum256(encoded)
	return hex.EncodeToString(sum[:credentialSize]), nil
}

// CanBurn reports whether an address holds one of the policy's
// credentials.
func (p *Policy) CanBurn(address string) bool {
	cred := CredentialFromAddress(address)
	for _, s := range p.Script.Scripts {
		if s.KeyHash == cred {
			return true
		}
	}
	return false
}
