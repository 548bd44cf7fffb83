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

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Ndtri returns the quantile of the standard normal distribution, i.e. the
// x for which the normal CDF equals p.
//
// Unlike mathext.NormalQuantile it never panics: inputs outside [0, 1]
// return NaN.
//
// Special cases:
//   - Ndtri(0) = -Inf
//   - Ndtri(1) = +Inf
//   - Ndtri(0.5) = 0
//   - Ndtri(p) = NaN for p < 0, p > 1 or NaN
func Ndtri(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return math.Inf(1)
	}
	return mathext.NormalQuantile(p)
}

// Erfinv computes the inverse error function for x in (-1, 1).
//
// Algorithm: erfinv(x) = ndtri((x+1)/2) / √2.
//
// Special cases:
//   - Erfinv(0) = 0
//   - Erfinv(1) = +Inf
//   - Erfinv(-1) = -Inf
//   - Erfinv(x) = NaN for |x| > 1 or NaN
func Erfinv(x float64) float64 {
	return Ndtri((x+1)/2) / math.Sqrt2
}

// Erfcinv computes the inverse complementary error function for x in (0, 2).
//
// Algorithm: erfcinv(x) = -ndtri(x/2) / √2.
//
// Special cases:
//   - Erfcinv(1) = 0
//   - Erfcinv(0) = +Inf
//   - Erfcinv(2) = -Inf
//   - Erfcinv(x) = NaN for x < 0, x > 2 or NaN
func Erfcinv(x float64) float64 {
	return -Ndtri(0.5*x) / math.Sqrt2
}
