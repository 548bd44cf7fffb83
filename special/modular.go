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

// Mulmod computes (a*b) mod m without overflowing int64.
//
// Requires m > 0 and a, b >= 0; a and b may be >= m. When a*b provably fits
// in an int64 the product is reduced directly, otherwise the active kernel
// (see Kernel) computes the result keeping every intermediate in [0, m).
//
// The fits-check b < MaxInt64/a is conservative: it sends some products that
// would have fit to the kernel, but never lets an overflowing one through.
func Mulmod(a, b, m int64) int64 {
	if a >= m {
		a %= m
	}
	if b >= m {
		b %= m
	}

	if a == 0 || b == 0 {
		return 0
	}

	if b < math.MaxInt64/a {
		c := a * b
		if c < m {
			return c
		}
		return c % m
	}

	return mulmodKernel(a, b, m)
}

// Powmod computes a^b mod m by binary exponentiation, multiplying through
// Mulmod so no step overflows.
//
// Requires m > 0 and a, b >= 0.
//
// Special cases:
//   - Powmod(a, 0, m) = 1 for m > 1
//   - Powmod(a, b, 1) = 0
func Powmod(a, b, m int64) int64 {
	if m == 1 && b == 0 {
		return 0
	}

	if a >= m {
		a %= m
	}

	r := int64(1)
	for b != 0 {
		if b&1 != 0 {
			r = Mulmod(r, a, m)
		}
		// The square after the top bit would never be used.
		if b >>= 1; b != 0 {
			a = Mulmod(a, a, m)
		}
	}

	return r
}
