// Copyright © 2025 ACTA
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actamsgs

import (
	"fmt"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const actaPrefix = "AC01"

var registered = false
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	if !registered {
		i18n.RegisterPrefix(actaPrefix, "ACTA SDK")
		registered = true
	}
	if !strings.HasPrefix(key, actaPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", actaPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Client AC0100xx
	MsgContextCanceled      = ffe("AC010000", "Context canceled")
	MsgClientNoConnection   = ffe("AC010001", "No HTTP connection is available to this client")
	MsgClientMissingAPIKey  = ffe("AC010002", "No API key supplied, and none resolvable from the environment for network '%s'")
	MsgClientInvalidHTTPURL = ffe("AC010003", "Invalid HTTP URL: %s")
	MsgClientNoContractID   = ffe("AC010004", "No contract ID supplied, and none available from the service configuration")
	MsgClientNoSigner       = ffe("AC010005", "No signer has been configured on this client")

	// Transport AC0101xx
	MsgAPIRequestFailed = ffe("AC010100", "ACTA API request failed: %s")

	// Transaction lifecycle AC0102xx
	MsgTxPrepareFailed = ffe("AC010200", "Prepare response did not include an unsigned envelope and network identifier")
	MsgTxSubmitFailed  = ffe("AC010201", "Submit response did not include a transaction ID")
	MsgTxFailed        = ffe("AC010202", "Transaction %s failed with status %s")

	// Normalization AC0103xx
	MsgDIDEmptyAddress   = ffe("AC010300", "Address must not be empty")
	MsgCredentialDocJSON = ffe("AC010301", "Credential document is not valid JSON")
	MsgCredentialDocType = ffe("AC010302", "Credential document must be a JSON string, bytes, or object (got %T)")
)
