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

	"github.com/ACTA-Team/sdk/pkg/actaapi"
	"github.com/ACTA-Team/sdk/pkg/actamsgs"
	"github.com/ACTA-Team/sdk/pkg/didutil"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type Vaults interface {
	// Create deploys a vault for the owner. Confirmed by re-reading the vault
	// record from the backend rather than by ledger polling.
	Create(ctx context.Context, owner string, opts ...RequestOption) (*actaapi.TransactionResult, error)

	// AuthorizeIssuer grants an issuer the right to write credentials into the
	// owner's vault. Confirmed against the ledger.
	AuthorizeIssuer(ctx context.Context, owner, issuer string, opts ...RequestOption) (*actaapi.TransactionResult, error)

	// RevokeIssuer removes a previously granted issuer. Confirmed against the
	// ledger.
	RevokeIssuer(ctx context.Context, owner, issuer string, opts ...RequestOption) (*actaapi.TransactionResult, error)

	// Get fetches the vault record for an owner
	Get(ctx context.Context, owner string) (*actaapi.VaultResponse, error)
}

// RequestOption carries the optional per-request settings shared across the
// vault and credential operations.
type RequestOption func(*requestOptions)

type requestOptions struct {
	contractID string
	date       string
}

// WithContractID targets a specific contract instead of the one advertised by
// the service configuration.
func WithContractID(contractID string) RequestOption {
	return func(o *requestOptions) {
		o.contractID = contractID
	}
}

// WithRevocationDate sets an explicit revocation date on a credential
// revocation, instead of the service's current time.
func WithRevocationDate(date string) RequestOption {
	return func(o *requestOptions) {
		o.date = date
	}
}

func applyOptions(opts []RequestOption) *requestOptions {
	o := &requestOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolveContractID prefers an explicitly supplied contract ID, falling back
// to the one published by the service configuration endpoint.
func (c *actaClient) resolveContractID(ctx context.Context, o *requestOptions) (string, error) {
	if o.contractID != "" {
		return o.contractID, nil
	}
	conf, err := c.Config(ctx)
	if err != nil {
		return "", err
	}
	if conf.ContractID == "" {
		return "", i18n.NewError(ctx, actamsgs.MsgClientNoContractID)
	}
	return conf.ContractID, nil
}

type vaults struct {
	*actaClient
}

func (c *actaClient) Vaults() Vaults {
	return &vaults{c}
}

func (v *vaults) Create(ctx context.Context, owner string, opts ...RequestOption) (*actaapi.TransactionResult, error) {
	o := applyOptions(opts)
	ownerDID, err := didutil.NormalizeDID(ctx, owner, v.network)
	if err != nil {
		return nil, err
	}
	contractID, err := v.resolveContractID(ctx, o)
	if err != nil {
		return nil, err
	}
	return v.runTransaction(ctx, "/vaults", &actaapi.CreateVaultRequest{
		Owner:      owner,
		OwnerDID:   ownerDID,
		ContractID: contractID,
	}, v.confirmCreated(owner))
}

// confirmCreated observes vault creation by re-reading the vault record,
// retrying reads that fail while the backend catches up. A record that still
// cannot be read leaves the outcome unresolved, with the read error attached
// so the caller can distinguish it from poll exhaustion.
func (v *vaults) confirmCreated(owner string) confirmFunc {
	return func(ctx context.Context, txID string) (*actaapi.TransactionResult, error) {
		var vault actaapi.VaultResponse
		err := v.confirmRetry.Do(ctx, func(attempt int) (bool, error) {
			return true, v.doGet(ctx, "/vaults/"+url.PathEscape(owner), &vault)
		})
		if err != nil {
			return &actaapi.TransactionResult{
				Status:        actaapi.ResultUnresolved,
				TransactionID: txID,
			}, err
		}
		return &actaapi.TransactionResult{
			Status:        actaapi.ResultConfirmed,
			TransactionID: txID,
		}, nil
	}
}

func (v *vaults) AuthorizeIssuer(ctx context.Context, owner, issuer string, opts ...RequestOption) (*actaapi.TransactionResult, error) {
	o := applyOptions(opts)
	contractID, err := v.resolveContractID(ctx, o)
	if err != nil {
		return nil, err
	}
	return v.runTransaction(ctx, "/vaults/authorize-issuer", &actaapi.AuthorizeIssuerRequest{
		Owner:      owner,
		Issuer:     issuer,
		ContractID: contractID,
	}, v.pollTransaction)
}

func (v *vaults) RevokeIssuer(ctx context.Context, owner, issuer string, opts ...RequestOption) (*actaapi.TransactionResult, error) {
	o := applyOptions(opts)
	contractID, err := v.resolveContractID(ctx, o)
	if err != nil {
		return nil, err
	}
	return v.runTransaction(ctx, "/vaults/revoke-issuer", &actaapi.RevokeIssuerRequest{
		Owner:      owner,
		Issuer:     issuer,
		ContractID: contractID,
	}, v.pollTransaction)
}

func (v *vaults) Get(ctx context.Context, owner string) (*actaapi.VaultResponse, error) {
	var vault actaapi.VaultResponse
	if err := v.doGet(ctx, "/vaults/"+url.PathEscape(owner), &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}
