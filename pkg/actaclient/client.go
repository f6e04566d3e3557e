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
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ACTA-Team/sdk/pkg/actaapi"
	"github.com/ACTA-Team/sdk/pkg/actaconf"
	"github.com/ACTA-Team/sdk/pkg/actamsgs"
	"github.com/ACTA-Team/sdk/pkg/actaresty"
	"github.com/ACTA-Team/sdk/pkg/confutil"
	"github.com/ACTA-Team/sdk/pkg/retry"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type ACTAClient interface {
	// Config
	Signer(s Signer) ACTAClient
	PollInterval(t time.Duration) ACTAClient
	PollAttempts(n int) ACTAClient
	HTTP(ctx context.Context, conf *actaconf.HTTPClientConfig) (ACTAClient, error)

	// Network is inferred from the service URL at connection time
	Network() actaapi.Network

	// Service metadata
	Health(ctx context.Context) (*actaapi.HealthResponse, error)
	Config(ctx context.Context) (*actaapi.ConfigResponse, error)
	TransactionStatus(ctx context.Context, txID string) (*actaapi.TxStatusResponse, error)

	// Vault operation interface
	Vaults() Vaults

	// Credential operation interface
	Credentials() Credentials
}

type actaClient struct {
	restAPI
	signer       Signer
	network      actaapi.Network
	pollInterval time.Duration
	pollAttempts int
	confirmRetry *retry.Retry

	configLock   sync.Mutex
	cachedConfig *actaapi.ConfigResponse
}

// New returns a client with no connection established. All operations fail
// until HTTP is called, so construction itself can never error.
func New() ACTAClient {
	return &actaClient{
		restAPI:      &unconnectedREST{},
		pollInterval: confutil.DurationMin(actaconf.DefaultPollConfig.Interval, 0, "1200ms"),
		pollAttempts: confutil.IntMin(actaconf.DefaultPollConfig.MaxAttempts, 1, 40),
		confirmRetry: retry.NewRetryLimited(&actaconf.RetryConfigWithMax{}),
	}
}

func (c *actaClient) HTTP(ctx context.Context, conf *actaconf.HTTPClientConfig) (ACTAClient, error) {
	network := actaapi.NetworkFromURL(conf.URL)
	apiKey, err := resolveAPIKey(ctx, conf.APIKey, network)
	if err != nil {
		return nil, err
	}
	rc, err := actaresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	actaresty.SetAPIKey(rc, apiKey)
	c.network = network
	c.restAPI = &httpREST{client: rc}
	return c, nil
}

// resolveAPIKey applies the key precedence: an explicit key in the config,
// then the network-scoped environment variable, then the generic one.
// Whitespace-only values count as unset at every level.
func resolveAPIKey(ctx context.Context, explicit string, network actaapi.Network) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	scopedVar := actaconf.APIKeyEnvVarPrefix + strings.ToUpper(string(network))
	if key := strings.TrimSpace(os.Getenv(scopedVar)); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(actaconf.APIKeyEnvVar)); key != "" {
		return key, nil
	}
	return "", i18n.NewError(ctx, actamsgs.MsgClientMissingAPIKey, network)
}

func (c *actaClient) Signer(s Signer) ACTAClient {
	c.signer = s
	return c
}

// PollInterval overrides the status poll cadence. Non-positive values are
// ignored, keeping the current setting.
func (c *actaClient) PollInterval(t time.Duration) ACTAClient {
	if t > 0 {
		c.pollInterval = t
	}
	return c
}

// PollAttempts overrides the status poll attempt ceiling. Non-positive values
// are ignored, keeping the current setting.
func (c *actaClient) PollAttempts(n int) ACTAClient {
	if n > 0 {
		c.pollAttempts = n
	}
	return c
}

func (c *actaClient) Network() actaapi.Network {
	return c.network
}

func (c *actaClient) Health(ctx context.Context) (*actaapi.HealthResponse, error) {
	var health actaapi.HealthResponse
	if err := c.doGet(ctx, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Config fetches the service configuration once, then serves it from cache
// for the lifetime of the client.
func (c *actaClient) Config(ctx context.Context) (*actaapi.ConfigResponse, error) {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	if c.cachedConfig != nil {
		return c.cachedConfig, nil
	}
	var conf actaapi.ConfigResponse
	if err := c.doGet(ctx, "/config", &conf); err != nil {
		return nil, err
	}
	c.cachedConfig = &conf
	return c.cachedConfig, nil
}

func (c *actaClient) TransactionStatus(ctx context.Context, txID string) (*actaapi.TxStatusResponse, error) {
	var status actaapi.TxStatusResponse
	if err := c.doGet(ctx, "/transactions/"+url.PathEscape(txID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}
