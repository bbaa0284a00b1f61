// Package config handles application configuration.
//
// Configuration is split into two categories:
//   - Service constants: fixed identity of the matotam service (source URL,
//     metadata version, project epoch). These are part of the on-chain
//     contract and must never vary per deployment.
//   - Runtime settings: network selection, indexer endpoint and credentials,
//     size policies. These can vary between deployments.
package config

import (
	"fmt"
	"time"
)

// Network identifies the target Cardano network.
type Network string

const (
	Mainnet Network = "mainnet"
	Preprod Network = "preprod"
	Preview Network = "preview"
)

// Service identity constants. These values are written into every minted
// metadata document and checked by the inbox read path; changing them
// orphans previously minted tokens.
const (
	// SourceURL marks metadata documents as belonging to this service.
	SourceURL = "https://matotam.io"

	// MetadataVersion tags the current document schema. Older versions
	// remain parseable forever; see internal/metadata.
	MetadataVersion = "matotam-metadata-v1"

	// MetadataVersionPrefix matches any historical schema version.
	MetadataVersionPrefix = "matotam-metadata-v"
)

// ProjectEpoch is the UTC day the time-based rarity code starts progressing.
// Mints before this instant are pinned to Y00D000.
var ProjectEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultIndexerEndpoints maps each network to its public Blockfrost base URL.
var DefaultIndexerEndpoints = map[Network]string{
	Mainnet: "https://cardano-mainnet.blockfrost.io/api/v0",
	Preprod: "https://cardano-preprod.blockfrost.io/api/v0",
	Preview: "https://cardano-preview.blockfrost.io/api/v0",
}

// Config holds deployment-specific runtime settings.
type Config struct {
	// Network selects the target chain. There is no silent default for
	// production use; Validate rejects unknown values.
	Network Network

	// IndexerEndpoint is the chain indexer base URL. Empty selects the
	// default endpoint for Network.
	IndexerEndpoint string

	// IndexerProjectID authenticates indexer requests.
	IndexerProjectID string

	// IndexerTimeout bounds each indexer request. Zero selects 10s.
	IndexerTimeout time.Duration

	// ServiceAddress is the service's own wallet address, included in every
	// minting policy so the service can co-authorize burns.
	ServiceAddress string

	// MaxImageBytes caps the embedded image data URI. When a generated
	// image exceeds the cap it is omitted entirely, never truncated.
	// Zero means unlimited.
	MaxImageBytes int

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string // debug, info, warn, error
	JSON  bool   // JSON output instead of colored console
	File  string // optional log file (always JSON)
}

// Default returns a config targeting the given network with default
// endpoints and policies.
func Default(network Network) Config {
	return Config{
		Network:         network,
		IndexerEndpoint: DefaultIndexerEndpoints[network],
		IndexerTimeout:  10 * time.Second,
		Log:             LogConfig{Level: "info"},
	}
}

// Validate checks the config for values that would fail at first use.
func (c *Config) Validate() error {
	switch c.Network {
	case Mainnet, Preprod, Preview:
	default:
		return fmt.Errorf("unknown network %q", c.Network)
	}
	if c.IndexerEndpoint == "" {
		return fmt.Errorf("indexer endpoint is required for network %q", c.Network)
	}
	if c.MaxImageBytes < 0 {
		return fmt.Errorf("max image bytes must be >= 0, got %d", c.MaxImageBytes)
	}
	return nil
}
