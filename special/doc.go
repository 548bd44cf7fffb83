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

// Package special provides scalar special functions that are missing from
// the usual cephes/CDFLIB style libraries, plus overflow-safe modular
// arithmetic on int64.
//
// # Logarithmic and exponential helpers
//
//   - Xlogy(x, y) - x*log(y), with 0*log(y) = 0 for any non-NaN y
//   - Xlog1py(x, y) - x*log1p(y), same zero policy
//   - Log1mexp(x) - log(1 - e^x) for x <= 0
//   - Log1pexp(x) - log(1 + e^x) (softplus)
//   - Logabs(x) - log(|x|)
//
// # Logistic
//
//   - Expit(x) - 1 / (1 + e^(-x))
//   - Logit(x) - log(x / (1 - x))
//
// # Other
//
//   - Sinc(x) - sin(x)/x, with Sinc(0) = 1
//   - Erfinv(x), Erfcinv(x) - inverse (complementary) error function
//   - Ndtri(p) - inverse of the standard normal CDF
//
// # Modular arithmetic
//
//   - Mulmod(a, b, m) - (a*b) mod m without int64 overflow
//   - Powmod(a, b, m) - a^b mod m by square-and-multiply
//
// Mulmod falls back to one of two kernels when the product may overflow:
// a 128-bit multiply/divide ("wide") or a double-and-add loop ("doubling").
// The kernel is chosen per architecture at init time and can be forced with
// SPECIAL_MULMOD_KERNEL=wide|doubling. Use Kernel to see which one is active.
//
// # Errors
//
// Nothing here returns an error or panics. Out-of-domain inputs produce NaN
// or ±Inf. The modular functions require m > 0 and non-negative a, b;
// other inputs give unspecified results.
//
// All functions are safe for concurrent use.
package special
