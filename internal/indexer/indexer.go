// Package indexer provides a client for a Blockfrost-style chain indexer.
//
// The indexer is an external collaborator: it answers which assets an
// address holds and what metadata an asset carries. Everything the core
// needs from it is expressed by the Client interface so the read path and
// the mint path can be tested against fakes.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matotam-io/matotam-core/internal/log"
)

// AssetRef is one entry of an asset listing.
type AssetRef struct {
	Unit     string
	Quantity string
}

// Asset is the indexer's view of a single asset, including its attached
// on-chain metadata (opaque to the indexer, parsed by internal/metadata).
type Asset struct {
	Unit            string         `json:"asset"`
	PolicyID        string         `json:"policy_id"`
	AssetName       string         `json:"asset_name"`
	Fingerprint     string         `json:"fingerprint"`
	Quantity        string         `json:"quantity"`
	OnchainMetadata map[string]any `json:"onchain_metadata"`
}

// Client is the query surface the core consumes.
type Client interface {
	// AssetsByPolicy lists assets minted under a policy, oldest first.
	AssetsByPolicy(ctx context.Context, policyID string) ([]AssetRef, error)
	// AssetsByAddress lists assets held by a payment address.
	AssetsByAddress(ctx context.Context, address string) ([]AssetRef, error)
	// AssetsByStake lists assets held across all addresses of a stake account.
	AssetsByStake(ctx context.Context, stakeAddress string) ([]AssetRef, error)
	// Asset fetches one asset with its on-chain metadata.
	Asset(ctx context.Context, unit string) (*Asset, error)
}

// StatusError is returned when the indexer responds with a non-2xx status.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("indexer status %d on %s", e.Code, e.Path)
}

// pageSize is the fixed listing page size. The inbox path treats a full
// page as "too many assets" rather than paginating (pagination of history
// is out of scope).
const pageSize = 100

// HTTPClient talks to a real indexer endpoint.
type HTTPClient struct {
	endpoint  string
	projectID string
	http      *http.Client
}

// New creates an indexer client for the given base endpoint, authenticating
// with projectID.
func New(endpoint, projectID string) *HTTPClient {
	return NewWithTimeout(endpoint, projectID, 10*time.Second)
}

// NewWithTimeout creates an indexer client with a custom HTTP timeout.
func NewWithTimeout(endpoint, projectID string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		endpoint:  endpoint,
		projectID: projectID,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// AssetsByPolicy implements Client.
func (c *HTTPClient) AssetsByPolicy(ctx context.Context, policyID string) ([]AssetRef, error) {
	path := fmt.Sprintf("/assets/policy/%s?count=%d&order=asc", url.PathEscape(policyID), pageSize)
	var rows []struct {
		Asset    string `json:"asset"`
		Quantity string `json:"quantity"`
	}
	if err := c.get(ctx, path, &rows); err != nil {
		return nil, err
	}
	refs := make([]AssetRef, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, AssetRef{Unit: r.Asset, Quantity: r.Quantity})
	}
	return refs, nil
}

// AssetsByAddress implements Client.
func (c *HTTPClient) AssetsByAddress(ctx context.Context, address string) ([]AssetRef, error) {
	path := fmt.Sprintf("/addresses/%s/assets?page=1&count=%d", url.PathEscape(address), pageSize)
	return c.listUnits(ctx, path)
}

// AssetsByStake implements Client.
func (c *HTTPClient) AssetsByStake(ctx context.Context, stakeAddress string) ([]AssetRef, error) {
	path := fmt.Sprintf("/accounts/%s/addresses/assets?page=1&count=%d", url.PathEscape(stakeAddress), pageSize)
	return c.listUnits(ctx, path)
}

func (c *HTTPClient) listUnits(ctx context.Context, path string) ([]AssetRef, error) {
	var rows []struct {
		Unit     string `json:"unit"`
		Quantity string `json:"quantity"`
	}
	if err := c.get(ctx, path, &rows); err != nil {
		return nil, err
	}
	refs := make([]AssetRef, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, AssetRef{Unit: r.Unit, Quantity: r.Quantity})
	}
	return refs, nil
}

// PolicyAssetCount reports how many assets exist under a policy, feeding
// the mint path's sequence estimate.
func (c *HTTPClient) PolicyAssetCount(ctx context.Context, policyID string) (int, error) {
	refs, err := c.AssetsByPolicy(ctx, policyID)
	if err != nil {
		return 0, err
	}
	return len(refs), nil
}

// Asset implements Client.
func (c *HTTPClient) Asset(ctx context.Context, unit string) (*Asset, error) {
	var asset Asset
	if err := c.get(ctx, "/assets/"+url.PathEscape(unit), &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.projectID != "" {
		req.Header.Set("project_id", c.projectID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Indexer.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("request rejected")
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, result); err != nil {
		log.Indexer.Warn().Err(err).Str("path", path).Msg("undecodable response")
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
