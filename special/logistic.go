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

// Expit computes the logistic sigmoid 1 / (1 + e^(-x)).
//
// It maps any real value to (0, 1), with Expit(0) = 0.5. Extreme inputs
// saturate through IEEE overflow/underflow of the exponential.
//
// Special cases:
//   - Expit(+Inf) = 1
//   - Expit(-Inf) = 0
//   - Expit(NaN) = NaN
func Expit(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Logit is the inverse of Expit: log(x / (1 - x)).
//
// Special cases:
//   - Logit(0) = -Inf
//   - Logit(1) = +Inf
//   - Logit(x) = NaN for x outside [0, 1]
func Logit(x float64) float64 {
	return math.Log(x / (1 - x))
}
