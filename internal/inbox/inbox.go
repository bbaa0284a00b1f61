// Package inbox loads the message NFTs a wallet currently holds and turns
// them into parsed messages, caching per-asset lookups across refreshes.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matotam-io/matotam-core/internal/indexer"
	"github.com/matotam-io/matotam-core/internal/log"
	"github.com/matotam-io/matotam-core/internal/metadata"
)

// ErrTooManyAssets is returned when the wallet holds a full listing page.
// The inbox does not paginate history; a wallet at the limit needs a
// different view than a message inbox.
var ErrTooManyAssets = errors.New("too_many_assets")

// assetLimit matches the indexer listing page size.
const assetLimit = 100

// Cache memoizes per-asset indexer lookups. Asset metadata is immutable
// once minted, so entries never expire.
type Cache interface {
	Get(unit string) (*indexer.Asset, bool)
	Put(unit string, asset *indexer.Asset)
}

// MemoryCache is a concurrency-safe in-process Cache.
type MemoryCache struct {
	mu     sync.RWMutex
	assets map[string]*indexer.Asset
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{assets: make(map[string]*indexer.Asset)}
}

// Get implements Cache.
func (c *MemoryCache) Get(unit string) (*indexer.Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	asset, ok := c.assets[unit]
	return asset, ok
}

// Put implements Cache.
func (c *MemoryCache) Put(unit string, asset *indexer.Asset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets[unit] = asset
}

// Len reports the number of cached assets.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.assets)
}

// Loader fetches and parses a wallet's inbox.
type Loader struct {
	client indexer.Client
	cache  Cache
}

// NewLoader creates a Loader. A nil cache disables memoization.
func NewLoader(client indexer.Client, cache Cache) *Loader {
	return &Loader{client: client, cache: cache}
}

// Fetch loads all messages held by a wallet. The stake address is tried
// first (it covers every payment address of the account); the payment
// address is the fallback. Both empty yields an empty inbox. Foreign
// assets and assets whose detail lookup fails are skipped.
func (l *Loader) Fetch(ctx context.Context, walletAddress, stakeAddress string) ([]*metadata.Message, error) {
	if walletAddress == "" && stakeAddress == "" {
		return nil, nil
	}

	refs, err := l.listAssets(ctx, walletAddress, stakeAddress)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, nil
	}
	if len(refs) >= assetLimit {
		return nil, ErrTooManyAssets
	}

	var messages []*metadata.Message
	for _, ref := range refs {
		if ref.Unit == "" {
			continue
		}
		asset, err := l.asset(ctx, ref.Unit)
		if err != nil {
			log.Inbox.Warn().Err(err).Str("unit", ref.Unit).Msg("asset lookup failed, skipping")
			continue
		}
		msg := metadata.ParseInboxMessage(ref.Unit, asset.PolicyID, asset.AssetName,
			asset.Fingerprint, asset.OnchainMetadata)
		if msg != nil {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

func (l *Loader) listAssets(ctx context.Context, walletAddress, stakeAddress string) ([]indexer.AssetRef, error) {
	if stakeAddress != "" {
		refs, err := l.client.AssetsByStake(ctx, stakeAddress)
		if err == nil && len(refs) > 0 {
			return refs, nil
		}
		if err != nil {
			log.Inbox.Warn().Err(err).Msg("stake listing failed, trying payment address")
		}
	}
	if walletAddress != "" {
		refs, err := l.client.AssetsByAddress(ctx, walletAddress)
		if err != nil {
			return nil, fmt.Errorf("list assets by address: %w", err)
		}
		return refs, nil
	}
	return nil, nil
}

func (l *Loader) asset(ctx context.Context, unit string) (*indexer.Asset, error) {
	if l.cache != nil {
		if asset, ok := l.cache.Get(unit); ok {
			return asset, nil
		}
	}
	asset, err := l.client.Asset(ctx, unit)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		l.cache.Put(unit, asset)
	}
	return asset, nil
}
