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

//go:build arm64

package special

import "golang.org/x/sys/cpu"

func init() {
	cpuFeatures = detectARM64Features()

	// UMULH gives the high word in one instruction; the 128/64 division is
	// done in software but is still cheaper than up to 63 doubling steps.
	selectKernel(KernelWide)
}

func detectARM64Features() []string {
	var f []string
	if cpu.ARM64.HasASIMD {
		f = append(f, "asimd")
	}
	if cpu.ARM64.HasPMULL {
		f = append(f, "pmull")
	}
	if cpu.ARM64.HasATOMICS {
		f = append(f, "atomics")
	}
	if cpu.ARM64.HasSVE {
		f = append(f, "sve")
	}
	return f
}
