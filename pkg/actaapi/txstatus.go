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

// TxStatus is the raw status string reported by the ledger status query.
// The set is open: values not known to this SDK must not break the poller.
type TxStatus string

const (
	TxStatusSuccess       TxStatus = "SUCCESS"
	TxStatusFailed        TxStatus = "FAILED"
	TxStatusError         TxStatus = "ERROR"
	TxStatusPending       TxStatus = "PENDING"
	TxStatusDuplicate     TxStatus = "DUPLICATE"
	TxStatusTryAgainLater TxStatus = "TRY_AGAIN_LATER"
)

type TxStatusResponse struct {
	Status TxStatus `json:"status"`
}

// TxClassification folds the open status set into the three outcomes the
// confirmation loop acts on. Classification is separate from the loop control
// so new status values can be added without touching the wait mechanics.
type TxClassification int

const (
	// TxInFlight - not yet terminal, keep polling
	TxInFlight TxClassification = iota
	// TxConfirmed - terminal success
	TxConfirmed
	// TxRejected - terminal failure
	TxRejected
)

func (s TxStatus) Classify() TxClassification {
	switch s {
	case TxStatusSuccess:
		return TxConfirmed
	case TxStatusFailed, TxStatusError:
		return TxRejected
	case TxStatusPending, TxStatusDuplicate, TxStatusTryAgainLater:
		return TxInFlight
	default:
		// Unrecognized values are tolerated as transient lookup noise
		return TxInFlight
	}
}

// ResultStatus is the terminal, caller-visible outcome of one orchestration
// run.
type ResultStatus string

const (
	ResultConfirmed ResultStatus = "confirmed"
	ResultFailed    ResultStatus = "failed"
	// ResultUnresolved means the confirmation poll exhausted its attempt
	// ceiling without observing a terminal status. Deliberately not an error:
	// callers should re-query the transaction independently.
	ResultUnresolved ResultStatus = "unresolved"
)

// TransactionResult is the only value an orchestration run hands back to the
// caller. It is not mutated after construction.
type TransactionResult struct {
	Status        ResultStatus `json:"status"`
	TransactionID string       `json:"transactionId"`
	FailureReason string       `json:"failureReason,omitempty"`
}
