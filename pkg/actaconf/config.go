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

// Package actaconf holds the configuration structures of the ACTA SDK.
// All optional fields are pointers, with package defaults applied by the
// consuming code via confutil.
package actaconf

import (
	"github.com/ACTA-Team/sdk/pkg/confutil"
)

// Environment variables consulted for the API key when no explicit key is
// configured. The network-scoped variable (e.g. ACTA_API_KEY_TESTNET) takes
// precedence over the network-agnostic fallback.
const (
	APIKeyEnvVar       = "ACTA_API_KEY"
	APIKeyEnvVarPrefix = "ACTA_API_KEY_"
)

type HTTPRetryConfig struct {
	Enabled          bool    `json:"enabled"`
	Count            *int    `json:"count,omitempty"`
	InitialDelay     *string `json:"initialDelay,omitempty"`
	MaximumDelay     *string `json:"maximumDelay,omitempty"`
	ErrorStatusCodes string  `json:"errorStatusCodes,omitempty"` // a regex string to match against the status codes which should be retried
}

type HTTPClientConfig struct {
	URL               string                 `json:"url"`
	APIKey            string                 `json:"apiKey,omitempty"`
	HTTPHeaders       map[string]interface{} `json:"httpHeaders,omitempty"`
	Retry             HTTPRetryConfig        `json:"retry,omitempty"`
	RequestTimeout    *string                `json:"requestTimeout,omitempty"`
	ConnectionTimeout *string                `json:"connectionTimeout,omitempty"`
}

var DefaultHTTPConfig = &HTTPClientConfig{
	ConnectionTimeout: confutil.P("30s"),
	RequestTimeout:    confutil.P("30s"),
	Retry: HTTPRetryConfig{
		Enabled:      false,
		Count:        confutil.P(5),
		InitialDelay: confutil.P("250ms"),
		MaximumDelay: confutil.P("30s"),
	},
}

type RetryConfig struct {
	InitialDelay *string  `json:"initialDelay,omitempty"`
	MaxDelay     *string  `json:"maxDelay,omitempty"`
	Factor       *float64 `json:"factor,omitempty"`
}

type RetryConfigWithMax struct {
	RetryConfig
	MaxAttempts *int `json:"maxAttempts,omitempty"`
}

var GenericRetryDefaults = &RetryConfigWithMax{
	RetryConfig: RetryConfig{
		InitialDelay: confutil.P("250ms"),
		MaxDelay:     confutil.P("30s"),
		Factor:       confutil.P(2.0),
	},
	MaxAttempts: confutil.P(3),
}

// PollConfig bounds the transaction status confirmation loop. The interval is
// fixed (no backoff) and the attempt ceiling is hard: exhausting it yields an
// unresolved outcome rather than an error.
type PollConfig struct {
	Interval    *string `json:"interval,omitempty"`
	MaxAttempts *int    `json:"maxAttempts,omitempty"`
}

var DefaultPollConfig = &PollConfig{
	Interval:    confutil.P("1200ms"),
	MaxAttempts: confutil.P(40),
}
