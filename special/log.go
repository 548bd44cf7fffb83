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

// Xlogy computes x*log(y).
//
// When x is zero the result is 0 for every y that is not NaN, including
// y = 0 (where log(y) = -Inf) and y < 0 (where log(y) is NaN).
//
// Special cases:
//   - Xlogy(0, y) = 0 for y not NaN
//   - Xlogy(x, NaN) = NaN
//   - Xlogy(x, 0) = -Inf*sign(x) for x != 0
func Xlogy(x, y float64) float64 {
	if x == 0 && !math.IsNaN(y) {
		return 0
	}
	return x * math.Log(y)
}

// Xlog1py computes x*log1p(y) with the same zero policy as Xlogy.
//
// Special cases:
//   - Xlog1py(0, y) = 0 for y not NaN, including y = -1
//   - Xlog1py(x, NaN) = NaN
func Xlog1py(x, y float64) float64 {
	if x == 0 && !math.IsNaN(y) {
		return 0
	}
	return x * math.Log1p(y)
}

// Log1mexp computes log(1 - e^x) for x <= 0.
//
// Near zero 1 - e^x cancels, so -expm1(x) is used instead; for x below -ln 2
// e^x is small and log1p(-e^x) keeps the precision.
//
// Special cases:
//   - Log1mexp(0) = -Inf
//   - Log1mexp(-Inf) = 0
//   - Log1mexp(x) = NaN for x > 0
func Log1mexp(x float64) float64 {
	if -x > log1mexpCutoff {
		return math.Log1p(-math.Exp(x))
	}
	return math.Log(-math.Expm1(x))
}

// Log1pexp computes log(1 + e^x), also known as softplus.
//
// Algorithm: four regimes keyed on x.
//   - x <= -37:   e^x (log1p(t) == t for such tiny t)
//   - x <= 18:    log1p(e^x)
//   - x <= 33.3:  x + e^-x
//   - otherwise:  x
//
// The result is finite and non-decreasing for every finite x.
func Log1pexp(x float64) float64 {
	switch {
	case x <= log1pexpSmall:
		return math.Exp(x)
	case x <= log1pexpMid:
		return math.Log1p(math.Exp(x))
	case x <= log1pexpLarge:
		return x + math.Exp(-x)
	default:
		return x
	}
}

// Logabs computes log(|x|).
func Logabs(x float64) float64 {
	return math.Log(math.Abs(x))
}
