/*
 * Copyright © 2025 ACTA
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
 * an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package actaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ACTA-Team/sdk/pkg/actaapi"
	"github.com/ACTA-Team/sdk/pkg/actaconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHandler func(t *testing.T, r *http.Request, body map[string]any) (status int, res any)

type testRoute struct {
	method  string
	path    string
	handler testHandler
}

type testServer struct {
	t      *testing.T
	server *httptest.Server
	prefix string
	lock   sync.Mutex
	calls  map[string]int
	routes []testRoute
}

// newTestServerHTTP builds a server routing requests by method+path to the
// supplied handlers. Prefix is stripped before matching, which lets a test
// mount the API under "/testnet" so network inference from the URL kicks in.
func newTestServerHTTP(t *testing.T, prefix string, routes ...testRoute) *testServer {
	ts := &testServer{t: t, prefix: prefix, calls: map[string]int{}, routes: routes}
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, prefix)
		var body map[string]any
		if r.Method == http.MethodPost {
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.NoError(t, err)
		}
		ts.lock.Lock()
		ts.calls[r.Method+" "+path]++
		ts.lock.Unlock()
		for _, route := range ts.routes {
			if route.method == r.Method && route.path == path {
				status, res := route.handler(t, r, body)
				b, err := json.Marshal(res)
				assert.NoError(t, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write(b)
				return
			}
		}
		assert.Failf(t, "unexpected request", "%s %s", r.Method, r.URL.Path)
		w.WriteHeader(404)
	}))
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) count(method, path string) int {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	return ts.calls[method+" "+path]
}

func (ts *testServer) url() string {
	return ts.server.URL + ts.prefix
}

func newTestClientAndServerHTTP(t *testing.T, routes ...testRoute) (context.Context, ACTAClient, *testServer) {
	ts := newTestServerHTTP(t, "", routes...)
	c, err := New().HTTP(context.Background(), &actaconf.HTTPClientConfig{
		URL:    ts.url(),
		APIKey: "unit-test-key",
	})
	require.NoError(t, err)
	return context.Background(), c.PollInterval(1 * time.Millisecond), ts
}

// newTestnetClientAndServerHTTP mounts the API under /testnet so the client
// infers the testnet network from its base URL.
func newTestnetClientAndServerHTTP(t *testing.T, routes ...testRoute) (context.Context, ACTAClient, *testServer) {
	ts := newTestServerHTTP(t, "/testnet", routes...)
	c, err := New().HTTP(context.Background(), &actaconf.HTTPClientConfig{
		URL:    ts.url(),
		APIKey: "unit-test-key",
	})
	require.NoError(t, err)
	return context.Background(), c.PollInterval(1 * time.Millisecond), ts
}

func configRoute(contractID string) testRoute {
	return testRoute{method: http.MethodGet, path: "/config", handler: func(t *testing.T, r *http.Request, body map[string]any) (int, any) {
		return 200, &actaapi.ConfigResponse{
			ContractID:        contractID,
			NetworkPassphrase: "Test SDF Network ; September 2015",
		}
	}}
}

// txRoute serves a shared prepare/submit endpoint, branching on the presence
// of signedEnvelope in the request body the way the real service does.
func txRoute(path, envelope, networkID, txID string) testRoute {
	return testRoute{method: http.MethodPost, path: path, handler: func(t *testing.T, r *http.Request, body map[string]any) (int, any) {
		if _, isSubmit := body["signedEnvelope"]; isSubmit {
			return 200, &actaapi.TransactionResponse{TransactionID: txID}
		}
		return 200, &actaapi.TransactionResponse{Envelope: envelope, NetworkID: networkID}
	}}
}

// statusRoute serves the scripted statuses in order, repeating the last one
// once the script is exhausted.
func statusRoute(txID string, statuses ...actaapi.TxStatus) testRoute {
	var idx int32
	return testRoute{method: http.MethodGet, path: "/transactions/" + txID, handler: func(t *testing.T, r *http.Request, body map[string]any) (int, any) {
		i := int(atomic.AddInt32(&idx, 1)) - 1
		if i >= len(statuses) {
			i = len(statuses) - 1
		}
		return 200, &actaapi.TxStatusResponse{Status: statuses[i]}
	}}
}

type signCapture struct {
	lock       sync.Mutex
	envelopes  []string
	passphrase []string
}

func (sc *signCapture) signer() Signer {
	return SignerFunc(func(ctx context.Context, unsignedEnvelope, networkPassphrase string) (string, error) {
		sc.lock.Lock()
		defer sc.lock.Unlock()
		sc.envelopes = append(sc.envelopes, unsignedEnvelope)
		sc.passphrase = append(sc.passphrase, networkPassphrase)
		return "signed:" + unsignedEnvelope, nil
	})
}

func TestUnconnectedClient(t *testing.T) {
	c := New()
	_, err := c.Health(context.Background())
	require.Regexp(t, "AC010001", err)
	_, err = c.Credentials().Verify(context.Background(), "vc-1")
	require.Regexp(t, "AC010001", err)
	_, err = c.Config(context.Background())
	require.Regexp(t, "AC010001", err)
}

func TestHTTPBadURL(t *testing.T) {
	t.Setenv(actaconf.APIKeyEnvVar, "some-key")
	_, err := New().HTTP(context.Background(), &actaconf.HTTPClientConfig{
		URL: "wss://not.http.example.com",
	})
	require.Regexp(t, "AC010003", err)
}

func TestMissingAPIKeyNoCallAttempted(t *testing.T) {
	t.Setenv(actaconf.APIKeyEnvVar, "")
	t.Setenv(actaconf.APIKeyEnvVarPrefix+"MAINNET", "")
	ts := newTestServerHTTP(t, "")
	_, err := New().HTTP(context.Background(), &actaconf.HTTPClientConfig{
		URL: ts.url(),
	})
	require.Regexp(t, "AC010002.*mainnet", err)
	ts.lock.Lock()
	defer ts.lock.Unlock()
	assert.Empty(t, ts.calls)
}

func TestAPIKeyPrecedence(t *testing.T) {
	ctx := context.Background()
	t.Setenv(actaconf.APIKeyEnvVar, "generic-key")
	t.Setenv(actaconf.APIKeyEnvVarPrefix+"TESTNET", "scoped-key")

	key, err := resolveAPIKey(ctx, "explicit-key", actaapi.NetworkTestnet)
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", key)

	key, err = resolveAPIKey(ctx, "  ", actaapi.NetworkTestnet)
	require.NoError(t, err)
	assert.Equal(t, "scoped-key", key)

	key, err = resolveAPIKey(ctx, "", actaapi.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, "generic-key", key)

	t.Setenv(actaconf.APIKeyEnvVar, "   ")
	_, err = resolveAPIKey(ctx, "", actaapi.NetworkMainnet)
	require.Regexp(t, "AC010002", err)
}

func TestAPIKeyHeaderSent(t *testing.T) {
	var gotKey string
	_, c, _ := newTestClientAndServerHTTP(t, testRoute{
		method: http.MethodGet, path: "/health",
		handler: func(t *testing.T, r *http.Request, body map[string]any) (int, any) {
			gotKey = r.Header.Get("x-api-key")
			return 200, &actaapi.HealthResponse{Status: "ok"}
		},
	})
	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "unit-test-key", gotKey)
}

func TestNetworkInference(t *testing.T) {
	_, c, _ := newTestClientAndServerHTTP(t)
	assert.Equal(t, actaapi.NetworkMainnet, c.Network())

	_, tc, _ := newTestnetClientAndServerHTTP(t)
	assert.Equal(t, actaapi.NetworkTestnet, tc.Network())
}

func TestConfigCachedAfterFirstFetch(t *testing.T) {
	ctx, c, ts := newTestClientAndServerHTTP(t, configRoute("CCONTRACT1"))
	conf1, err := c.Config(ctx)
	require.NoError(t, err)
	conf2, err := c.Config(ctx)
	require.NoError(t, err)
	assert.Same(t, conf1, conf2)
	assert.Equal(t, "CCONTRACT1", conf1.ContractID)
	assert.Equal(t, 1, ts.count(http.MethodGet, "/config"))
}

func TestConfigErrorNotCached(t *testing.T) {
	failures := int32(1)
	ctx, c, ts := newTestClientAndServerHTTP(t, testRoute{
		method: http.MethodGet, path: "/config",
		handler: func(t *testing.T, r *http.Request, body map[string]any) (int, any) {
			if atomic.AddInt32(&failures, -1) >= 0 {
				return 500, map[string]any{"error": "pop"}
			}
			return 200, &actaapi.ConfigResponse{ContractID: "CCONTRACT1"}
		},
	})
	_, err := c.Config(ctx)
	require.Regexp(t, "AC010100", err)
	conf, err := c.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CCONTRACT1", conf.ContractID)
	assert.Equal(t, 2, ts.count(http.MethodGet, "/config"))
}

func TestPollSettingsIgnoreNonPositive(t *testing.T) {
	c := New().PollInterval(0).PollAttempts(0).(*actaClient)
	assert.Equal(t, 1200*time.Millisecond, c.pollInterval)
	assert.Equal(t, 40, c.pollAttempts)

	c = New().PollInterval(-1 * time.Second).PollAttempts(-5).(*actaClient)
	assert.Equal(t, 1200*time.Millisecond, c.pollInterval)
	assert.Equal(t, 40, c.pollAttempts)

	c = New().PollInterval(5 * time.Millisecond).PollAttempts(7).(*actaClient)
	assert.Equal(t, 5*time.Millisecond, c.pollInterval)
	assert.Equal(t, 7, c.pollAttempts)
}

func TestTransactionStatus(t *testing.T) {
	ctx, c, _ := newTestClientAndServerHTTP(t, statusRoute("tx-123", actaapi.TxStatusPending))
	status, err := c.TransactionStatus(ctx, "tx-123")
	require.NoError(t, err)
	assert.Equal(t, actaapi.TxStatusPending, status.Status)
}
