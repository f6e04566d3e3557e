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
	"github.com/ACTA-Team/sdk/pkg/didutil"
)

type Credentials interface {
	// Issue writes a credential into the holder's vault. Confirmed against the
	// ledger.
	Issue(ctx context.Context, params *IssueCredentialParams, opts ...RequestOption) (*actaapi.TransactionResult, error)

	// Revoke marks a credential revoked. Confirmed against the ledger.
	Revoke(ctx context.Context, vcID string, opts ...RequestOption) (*actaapi.TransactionResult, error)

	// Verify reports the current validity of a credential
	Verify(ctx context.Context, vcID string) (*actaapi.VerifyResponse, error)

	// List returns the credential IDs held in the owner's vault
	List(ctx context.Context, owner string) ([]string, error)
}

// IssueCredentialParams are the caller-facing issuance inputs, before DID and
// document normalization. VCData accepts a JSON string, raw bytes, a map, or
// a struct that marshals to a JSON object. Owner is the vault owner's raw
// address and defaults to Holder when unset.
type IssueCredentialParams struct {
	Owner     string
	VCID      string
	VCData    any
	Issuer    string
	IssuerDID string
	Holder    string
}

type credentials struct {
	*actaClient
}

func (c *actaClient) Credentials() Credentials {
	return &credentials{c}
}

func (cr *credentials) Issue(ctx context.Context, params *IssueCredentialParams, opts ...RequestOption) (*actaapi.TransactionResult, error) {
	o := applyOptions(opts)

	holderDID, err := didutil.NormalizeDID(ctx, params.Holder, cr.network)
	if err != nil {
		return nil, err
	}
	issuerDID := params.IssuerDID
	if issuerDID == "" {
		issuerDID = params.Issuer
	}
	issuerDID, err = didutil.NormalizeDID(ctx, issuerDID, cr.network)
	if err != nil {
		return nil, err
	}
	vcData, err := didutil.EnsureContext(ctx, params.VCData)
	if err != nil {
		return nil, err
	}
	contractID, err := cr.resolveContractID(ctx, o)
	if err != nil {
		return nil, err
	}
	owner := params.Owner
	if owner == "" {
		owner = params.Holder
	}
	return cr.runTransaction(ctx, "/credentials", &actaapi.IssueCredentialRequest{
		Owner:      owner,
		VCID:       params.VCID,
		VCData:     vcData,
		Issuer:     params.Issuer,
		IssuerDID:  issuerDID,
		Holder:     holderDID,
		ContractID: contractID,
	}, cr.pollTransaction)
}

func (cr *credentials) Revoke(ctx context.Context, vcID string, opts ...RequestOption) (*actaapi.TransactionResult, error) {
	o := applyOptions(opts)
	contractID, err := cr.resolveContractID(ctx, o)
	if err != nil {
		return nil, err
	}
	return cr.runTransaction(ctx, "/credentials/revoke", &actaapi.RevokeCredentialRequest{
		VCID:       vcID,
		Date:       o.date,
		ContractID: contractID,
	}, cr.pollTransaction)
}

func (cr *credentials) Verify(ctx context.Context, vcID string) (*actaapi.VerifyResponse, error) {
	var verify actaapi.VerifyResponse
	if err := cr.doGet(ctx, "/credentials/"+url.PathEscape(vcID)+"/verify", &verify); err != nil {
		return nil, err
	}
	return &verify, nil
}

func (cr *credentials) List(ctx context.Context, owner string) ([]string, error) {
	var list actaapi.ListCredentialsResponse
	if err := cr.doGet(ctx, "/vaults/"+url.PathEscape(owner)+"/credentials", &list); err != nil {
		return nil, err
	}
	return list.Credentials(), nil
}
