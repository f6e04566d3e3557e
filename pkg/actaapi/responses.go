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

// TransactionResponse is what every transaction endpoint returns, in one of
// two shapes: a prepared (unsigned) envelope with the network identifier to
// sign it against, or the identifier of a submitted transaction. Field
// presence is the only oracle for which shape arrived - callers must check
// Prepared()/Submitted() rather than assume from the call site.
type TransactionResponse struct {
	Envelope      string `json:"envelope,omitempty"`
	NetworkID     string `json:"networkId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

func (r *TransactionResponse) Prepared() bool {
	return r.Envelope != "" && r.NetworkID != ""
}

func (r *TransactionResponse) Submitted() bool {
	return r.TransactionID != ""
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ConfigResponse carries the network-scoped service configuration. The
// contract ID is the default target for all transaction intents when no
// per-call override is supplied.
type ConfigResponse struct {
	ContractID        string `json:"contractId"`
	NetworkPassphrase string `json:"networkPassphrase,omitempty"`
}

type VaultResponse struct {
	Owner string `json:"owner"`
	DID   string `json:"did,omitempty"`
}

type VerifyStatus string

const (
	VerifyStatusValid   VerifyStatus = "valid"
	VerifyStatusRevoked VerifyStatus = "revoked"
)

type VerifyResponse struct {
	Status VerifyStatus `json:"status"`
	Since  string       `json:"since,omitempty"`
}

// ListCredentialsResponse historically carried the credential IDs under either
// field; "result" is a deprecated alias of "ids" and both may be present.
type ListCredentialsResponse struct {
	IDs    []string `json:"ids,omitempty"`
	Result []string `json:"result,omitempty"`
}

// Credentials returns the listed credential IDs, preferring the primary field
// over the deprecated alias.
func (r *ListCredentialsResponse) Credentials() []string {
	if r.IDs != nil {
		return r.IDs
	}
	return r.Result
}
