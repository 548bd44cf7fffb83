// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package special

import "math"

// =============================================================================
// Constants for the log/exp helpers
// =============================================================================

// Log1mexp switches from log(-expm1(x)) to log1p(-exp(x)) once -x exceeds ln 2.
const log1mexpCutoff = math.Ln2

// Log1pexp regime breakpoints for float64.
const (
	// Below this log1p(e^x) == e^x to working precision.
	log1pexpSmall = -37.0

	// Up to here log1p(e^x) is evaluated directly.
	log1pexpMid = 18.0

	// Up to here x + e^-x; beyond it e^-x is below half an ulp of x.
	log1pexpLarge = 33.3
)
