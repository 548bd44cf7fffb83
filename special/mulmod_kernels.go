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

import "math/bits"

// Mulmod kernels. Both expect 0 < a, b < m.

// mulmodDoubling is binary double-and-add: walk the bits of b, adding the
// running double of a into r. Each addition is done as r + (a - m) when
// r + a would reach m, so values stay in [0, m) and never overflow.
func mulmodDoubling(a, b, m int64) int64 {
	var r int64
	for b != 0 {
		if b&1 != 0 {
			// r = (r + a) % m
			if m-r > a {
				r += a
			} else {
				r += a - m
			}
		}

		// a = (a + a) % m
		if m-a > a {
			a += a
		} else {
			a += a - m
		}

		b >>= 1
	}
	return r
}

// mulmodWide forms the full 128-bit product and divides once.
// a*b < m*m, so hi < m and Div64 cannot overflow.
func mulmodWide(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))
	return int64(rem)
}
