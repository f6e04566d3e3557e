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

package actaapi

import (
	"encoding/json"
)

// Each transaction endpoint accepts one of two mutually exclusive request
// shapes: a prepare shape carrying the structured intent fields, or a submit
// shape carrying only the signed envelope. The server decides which branch
// executes from the fields present - the client only constructs the correct
// shape for the mode it is in.

type CreateVaultRequest struct {
	Owner      string `json:"owner"`
	OwnerDID   string `json:"ownerDid"`
	ContractID string `json:"contractId,omitempty"`
}

type AuthorizeIssuerRequest struct {
	Owner      string `json:"owner"`
	Issuer     string `json:"issuer"`
	ContractID string `json:"contractId,omitempty"`
}

type RevokeIssuerRequest struct {
	Owner      string `json:"owner"`
	Issuer     string `json:"issuer"`
	ContractID string `json:"contractId,omitempty"`
}

type IssueCredentialRequest struct {
	Owner      string          `json:"owner"`
	VCID       string          `json:"vcId"`
	VCData     json.RawMessage `json:"vcData"`
	Issuer     string          `json:"issuer"`
	IssuerDID  string          `json:"issuerDid,omitempty"`
	Holder     string          `json:"holder"`
	ContractID string          `json:"contractId,omitempty"`
}

type RevokeCredentialRequest struct {
	VCID       string `json:"vcId"`
	Date       string `json:"date,omitempty"`
	ContractID string `json:"contractId,omitempty"`
}

// SubmitEnvelopeRequest is the submit shape, common to all transaction
// endpoints.
type SubmitEnvelopeRequest struct {
	SignedEnvelope string `json:"signedEnvelope"`
}
