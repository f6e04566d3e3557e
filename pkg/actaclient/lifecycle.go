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
	"github.com/ACTA-Team/sdk/pkg/retry"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Signer produces a signed envelope from the unsigned envelope returned by a
// prepare call. The network passphrase is the one the service prepared the
// envelope for, not one configured locally.
//
// Key material never passes through this SDK: the signer callback is the only
// place a private key is used, and it stays on the caller's side of the
// interface.
type Signer interface {
	Sign(ctx context.Context, unsignedEnvelope, networkPassphrase string) (signedEnvelope string, err error)
}

// SignerFunc adapts a plain function to the Signer interface.
type SignerFunc func(ctx context.Context, unsignedEnvelope, networkPassphrase string) (string, error)

func (f SignerFunc) Sign(ctx context.Context, unsignedEnvelope, networkPassphrase string) (string, error) {
	return f(ctx, unsignedEnvelope, networkPassphrase)
}

// confirmFunc observes the outcome of a submitted transaction. Most intents
// confirm by polling the ledger status endpoint; vault creation confirms by
// re-reading the vault record from the backend.
type confirmFunc func(ctx context.Context, txID string) (*actaapi.TransactionResult, error)

// runTransaction drives one complete prepare / sign / submit / confirm cycle
// against a single endpoint. Prepare and submit share the path: the service
// discriminates on the request body, and the client discriminates the
// response by which fields are populated.
func (c *actaClient) runTransaction(ctx context.Context, path string, prepareReq any, confirm confirmFunc) (*actaapi.TransactionResult, error) {
	if c.signer == nil {
		return nil, i18n.NewError(ctx, actamsgs.MsgClientNoSigner)
	}

	var prep actaapi.TransactionResponse
	if err := c.doPost(ctx, path, prepareReq, &prep); err != nil {
		return nil, err
	}
	if !prep.Prepared() {
		return nil, i18n.NewError(ctx, actamsgs.MsgTxPrepareFailed)
	}

	// Signer failures propagate exactly as returned - the caller owns the
	// signing implementation and its error semantics
	signed, err := c.signer.Sign(ctx, prep.Envelope, prep.NetworkID)
	if err != nil {
		return nil, err
	}

	var sub actaapi.TransactionResponse
	if err := c.doPost(ctx, path, &actaapi.SubmitEnvelopeRequest{SignedEnvelope: signed}, &sub); err != nil {
		return nil, err
	}
	if !sub.Submitted() {
		return nil, i18n.NewError(ctx, actamsgs.MsgTxSubmitFailed)
	}

	return confirm(ctx, sub.TransactionID)
}

// pollTransaction queries the transaction status at a fixed cadence until a
// terminal status is observed or the attempt ceiling is reached. Exhausting
// the ceiling is not an error: the caller gets an unresolved result and can
// re-query via TransactionStatus at their own pace.
func (c *actaClient) pollTransaction(ctx context.Context, txID string) (*actaapi.TransactionResult, error) {
	l := log.L(ctx)
	l.Debugf("Polling transaction %s (interval=%s attempts=%d)", txID, c.pollInterval, c.pollAttempts)
	wait := retry.NewFixed(c.pollInterval, c.pollAttempts)
	statusPath := "/transactions/" + url.PathEscape(txID)
	for attempt := 1; attempt <= c.pollAttempts; attempt++ {
		var status actaapi.TxStatusResponse
		err := c.doGet(ctx, statusPath, &status)
		if err != nil {
			// Status lookups are read-only, so transient failures just burn
			// an attempt rather than aborting the wait
			l.Warnf("Transaction %s status query failed (attempt %d/%d): %s", txID, attempt, c.pollAttempts, err)
		} else {
			switch status.Status.Classify() {
			case actaapi.TxConfirmed:
				l.Infof("Transaction %s confirmed after %d attempt(s)", txID, attempt)
				return &actaapi.TransactionResult{
					Status:        actaapi.ResultConfirmed,
					TransactionID: txID,
				}, nil
			case actaapi.TxRejected:
				return &actaapi.TransactionResult{
						Status:        actaapi.ResultFailed,
						TransactionID: txID,
						FailureReason: string(status.Status),
					},
					i18n.NewError(ctx, actamsgs.MsgTxFailed, txID, status.Status)
			default:
				l.Tracef("Transaction %s still in flight with status '%s' (attempt %d/%d)", txID, status.Status, attempt, c.pollAttempts)
			}
		}
		if attempt < c.pollAttempts {
			if err := wait.WaitDelay(ctx, attempt); err != nil {
				return &actaapi.TransactionResult{
					Status:        actaapi.ResultUnresolved,
					TransactionID: txID,
				}, err
			}
		}
	}
	l.Warnf("Transaction %s not resolved after %d attempts", txID, c.pollAttempts)
	return &actaapi.TransactionResult{
		Status:        actaapi.ResultUnresolved,
		TransactionID: txID,
	}, nil
}
