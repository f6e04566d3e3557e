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
	"strings"
)

// Network identifies which ledger environment a client targets. It is derived
// once from the configured base URL and never recomputed for the lifetime of
// the client.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// NetworkFromURL infers the network from a base endpoint by substring match.
func NetworkFromURL(url string) Network {
	if strings.Contains(url, string(NetworkTestnet)) {
		return NetworkTestnet
	}
	return NetworkMainnet
}
