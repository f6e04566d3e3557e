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

// Package confutil provides helpers for reading pointer-valued configuration
// fields with defaults, so zero values and unset values can be distinguished.
package confutil

import (
	"time"
)

// P is a convenience to get a pointer to a value, useful in constructing config
func P[T any](v T) *T {
	return &v
}

func Bool(bPtr *bool, def bool) bool {
	if bPtr == nil {
		return def
	}
	return *bPtr
}

func StringNotEmpty(sPtr *string, def string) string {
	if sPtr == nil || *sPtr == "" {
		return def
	}
	return *sPtr
}

func StringOrEmpty(sPtr *string, def string) string {
	if sPtr == nil {
		return def
	}
	return *sPtr
}

func IntMin(iPtr *int, min int, def int) int {
	if iPtr == nil || *iPtr < min {
		return def
	}
	return *iPtr
}

func Float64Min(fPtr *float64, min float64, def float64) float64 {
	if fPtr == nil || *fPtr < min {
		return def
	}
	return *fPtr
}

// DurationMin parses a duration string pointer, falling back to the default
// string (which must itself parse) when unset, unparseable, or below min.
func DurationMin(sPtr *string, min time.Duration, def string) time.Duration {
	defDuration, _ := time.ParseDuration(def)
	if sPtr == nil {
		return defDuration
	}
	d, err := time.ParseDuration(*sPtr)
	if err != nil || d < min {
		return defDuration
	}
	return d
}
