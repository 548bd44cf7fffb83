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

//go:build amd64

package special

import "golang.org/x/sys/cpu"

func init() {
	cpuFeatures = detectX86Features()

	// MULQ/DIVQ give the 128-bit product and remainder directly.
	selectKernel(KernelWide)
}

func detectX86Features() []string {
	var f []string
	if cpu.X86.HasBMI2 {
		f = append(f, "bmi2")
	}
	if cpu.X86.HasADX {
		f = append(f, "adx")
	}
	if cpu.X86.HasAVX2 {
		f = append(f, "avx2")
	}
	if cpu.X86.HasAVX512 {
		f = append(f, "avx512")
	}
	return f
}
