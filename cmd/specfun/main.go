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

// Command specfun evaluates the special functions from the command line.
//
// Usage:
//
//	specfun list
//	specfun eval powmod 2 10 1000
//	specfun --format json eval log1mexp -0.1
//	specfun table log1pexp --from=-40 --to=40 --steps 9
//	specfun info
//
// Global flags must come before the function name so that negative
// arguments are not mistaken for flags. The output format defaults to
// SPECFUN_FORMAT (text); SPECIAL_MULMOD_KERNEL forces the Mulmod kernel.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
