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
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// MulmodKernel identifies the overflow-safe fallback Mulmod uses when a*b
// may not fit in an int64.
type MulmodKernel int

const (
	// KernelDoubling is the portable double-and-add loop, O(log b) steps.
	KernelDoubling MulmodKernel = iota

	// KernelWide uses a 128-bit product and a single 128/64 division.
	KernelWide
)

// String returns a human-readable name for the kernel.
func (k MulmodKernel) String() string {
	switch k {
	case KernelDoubling:
		return "doubling"
	case KernelWide:
		return "wide"
	default:
		return "unknown"
	}
}

// KernelInfo describes the Mulmod kernel selected for this process.
type KernelInfo struct {
	Kernel   MulmodKernel
	Name     string
	Arch     string
	Features []string

	// Forced is true when SPECIAL_MULMOD_KERNEL overrode the default.
	Forced bool
}

// Set once by init() in dispatch_*.go.
var (
	currentKernel MulmodKernel
	kernelForced  bool
)

// mulmodKernel is the fallback Mulmod calls when a*b may overflow.
var mulmodKernel = mulmodDoubling

// cpuFeatures lists the CPU features relevant to the kernels, as detected
// by golang.org/x/sys/cpu. Set by init() in dispatch_*.go files.
var cpuFeatures []string

// Kernel reports the active Mulmod kernel and the host features it was
// chosen against.
func Kernel() KernelInfo {
	return KernelInfo{
		Kernel:   currentKernel,
		Name:     currentKernel.String(),
		Arch:     runtime.GOARCH,
		Features: append([]string(nil), cpuFeatures...),
		Forced:   kernelForced,
	}
}

// dispatchEnv is read with the SPECIAL_ prefix.
type dispatchEnv struct {
	MulmodKernel string `envconfig:"MULMOD_KERNEL" default:"auto"`
}

// kernelOverride returns the kernel requested through SPECIAL_MULMOD_KERNEL.
// Unset, "auto" and unrecognised values yield ok == false.
func kernelOverride() (k MulmodKernel, ok bool) {
	var env dispatchEnv
	if err := envconfig.Process("special", &env); err != nil {
		return 0, false
	}
	return parseKernel(env.MulmodKernel)
}

func parseKernel(s string) (MulmodKernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "doubling":
		return KernelDoubling, true
	case "wide":
		return KernelWide, true
	default:
		return 0, false
	}
}

// selectKernel installs def unless the environment forces another kernel.
func selectKernel(def MulmodKernel) {
	k := def
	kernelForced = false
	if forced, ok := kernelOverride(); ok {
		k = forced
		kernelForced = forced != def
	}

	currentKernel = k
	switch k {
	case KernelWide:
		mulmodKernel = mulmodWide
	default:
		mulmodKernel = mulmodDoubling
	}
}
