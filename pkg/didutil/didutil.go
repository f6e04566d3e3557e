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

// Package didutil normalizes bare account addresses into did:pkh identifiers,
// and normalizes credential documents to carry the JSON-LD contexts the
// backend requires.
package didutil

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ACTA-Team/sdk/pkg/actaapi"
	"github.com/ACTA-Team/sdk/pkg/actamsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/samber/lo"
)

const (
	// DefaultBlockchain is the chain segment of generated did:pkh identifiers
	DefaultBlockchain = "stellar"

	ContextCredentialsV1   = "https://www.w3.org/2018/credentials/v1"
	ContextDataIntegrityV2 = "https://w3id.org/security/data-integrity/v2"
)

// RequiredContexts returns the JSON-LD context URIs every credential document
// must carry, in the order they are appended.
func RequiredContexts() []string {
	return []string{ContextCredentialsV1, ContextDataIntegrityV2}
}

// BuildDID assembles a did:pkh identifier from a raw account address. The
// blockchain segment defaults to stellar unless overridden.
func BuildDID(address string, network actaapi.Network, blockchain ...string) string {
	chain := DefaultBlockchain
	if len(blockchain) > 0 && blockchain[0] != "" {
		chain = blockchain[0]
	}
	return strings.Join([]string{"did:pkh", chain, string(network), address}, ":")
}

// NormalizeDID maps an identifier that may be either a bare address or an
// already-formed DID onto DID form. Inputs that already carry a "did:" prefix
// pass through untouched, whatever their method.
func NormalizeDID(ctx context.Context, input string, network actaapi.Network) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", i18n.NewError(ctx, actamsgs.MsgDIDEmptyAddress)
	}
	if strings.HasPrefix(trimmed, "did:") {
		return trimmed, nil
	}
	return BuildDID(trimmed, network), nil
}

// EnsureContext returns a JSON rendering of doc whose top-level @context array
// contains every required context URI. The input is never mutated: maps are
// shallow-copied before the @context key is replaced. Accepted inputs are a
// JSON string, raw JSON bytes, a map, or any struct that marshals to a JSON
// object.
func EnsureContext(ctx context.Context, doc any) (json.RawMessage, error) {
	var obj map[string]any
	switch d := doc.(type) {
	case nil:
		return nil, i18n.NewError(ctx, actamsgs.MsgCredentialDocType, doc)
	case string:
		if err := json.Unmarshal([]byte(d), &obj); err != nil {
			return nil, i18n.WrapError(ctx, err, actamsgs.MsgCredentialDocJSON)
		}
	case []byte:
		if err := json.Unmarshal(d, &obj); err != nil {
			return nil, i18n.WrapError(ctx, err, actamsgs.MsgCredentialDocJSON)
		}
	case json.RawMessage:
		if err := json.Unmarshal(d, &obj); err != nil {
			return nil, i18n.WrapError(ctx, err, actamsgs.MsgCredentialDocJSON)
		}
	case map[string]any:
		obj = d
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, actamsgs.MsgCredentialDocJSON)
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil, i18n.NewError(ctx, actamsgs.MsgCredentialDocType, doc)
		}
	}
	if obj == nil {
		return nil, i18n.NewError(ctx, actamsgs.MsgCredentialDocType, doc)
	}

	out := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	out["@context"] = mergeContexts(obj["@context"])

	return json.Marshal(out)
}

// mergeContexts appends any missing required URIs to the existing @context
// array, preserving the caller's order. A non-array @context (string, object,
// absent) is replaced wholesale with the required list.
func mergeContexts(existing any) []any {
	arr, ok := existing.([]any)
	if !ok {
		return lo.Map(RequiredContexts(), func(s string, _ int) any { return s })
	}
	merged := make([]any, len(arr))
	copy(merged, arr)
	for _, required := range RequiredContexts() {
		present := lo.ContainsBy(merged, func(e any) bool {
			s, isStr := e.(string)
			return isStr && s == required
		})
		if !present {
			merged = append(merged, required)
		}
	}
	return merged
}
