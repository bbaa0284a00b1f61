package indexer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test_project")
}

func TestAssetsByPolicy(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/policy/abc123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("project_id"); got != "test_project" {
			t.Errorf("project_id header = %q", got)
		}
		w.Write([]byte(`[{"asset":"abc123.6d736731","quantity":"1"},{"asset":"abc123.6d736732","quantity":"1"}]`))
	})

	refs, err := c.AssetsByPolicy(context.Background(), "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[0].Unit != "abc123.6d736731" || refs[0].Quantity != "1" {
		t.Errorf("first ref = %+v", refs[0])
	}
}

func TestAssetsByStake(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/stake1xyz/addresses/assets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"unit":"pol.asset","quantity":"1"}]`))
	})

	refs, err := c.AssetsByStake(context.Background(), "stake1xyz")
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 1 || refs[0].Unit != "pol.asset" {
		t.Errorf("refs = %+v", refs)
	}
}

func TestAssetsByAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/addresses/addr1qqq/assets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[]`))
	})

	refs, err := c.AssetsByAddress(context.Background(), "addr1qqq")
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 0 {
		t.Errorf("got %d refs, want 0", len(refs))
	}
}

func TestAsset(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"asset": "abc123646566",
			"policy_id": "abc123",
			"asset_name": "646566",
			"fingerprint": "asset1xyz",
			"quantity": "1",
			"onchain_metadata": {"name": "matotam msg", "messageSegments": ["hi"]}
		}`))
	})

	asset, err := c.Asset(context.Background(), "abc123646566")
	if err != nil {
		t.Fatal(err)
	}
	if asset.PolicyID != "abc123" || asset.Fingerprint != "asset1xyz" {
		t.Errorf("asset = %+v", asset)
	}
	if asset.OnchainMetadata["name"] != "matotam msg" {
		t.Errorf("metadata not decoded: %+v", asset.OnchainMetadata)
	}
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.Asset(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error on 404")
	}
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a StatusError", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", se.Code)
	}
}
