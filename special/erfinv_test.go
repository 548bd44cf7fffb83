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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestNdtri(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959963984540054},
		{0.025, -1.959963984540054},
		{0.8413447460685429, 1},
		{1e-10, -6.361340902404056},
	}

	for _, tt := range tests {
		got := Ndtri(tt.p)
		if !scalar.EqualWithinAbsOrRel(got, tt.want, 1e-15, 1e-12) {
			t.Errorf("Ndtri(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	assert.True(t, math.IsInf(Ndtri(0), -1))
	assert.True(t, math.IsInf(Ndtri(1), 1))

	// Out of domain is NaN rather than a panic.
	for _, p := range []float64{-0.1, 1.1, math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.NotPanics(t, func() { Ndtri(p) })
		assert.True(t, math.IsNaN(Ndtri(p)), "Ndtri(%v)", p)
	}
}

func TestErfinv(t *testing.T) {
	for _, x := range []float64{-0.99, -0.9, -0.5, -0.1, 0, 0.1, 0.3, 0.5, 0.9, 0.99} {
		got := Erfinv(x)
		want := math.Erfinv(x)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-15, 1e-9) {
			t.Errorf("Erfinv(%v) = %v, want %v", x, got, want)
		}

		if back := math.Erf(got); !scalar.EqualWithinAbsOrRel(back, x, 1e-15, 1e-12) {
			t.Errorf("Erf(Erfinv(%v)) = %v", x, back)
		}
	}

	assert.True(t, math.IsInf(Erfinv(1), 1))
	assert.True(t, math.IsInf(Erfinv(-1), -1))
	assert.True(t, math.IsNaN(Erfinv(1.5)))
	assert.True(t, math.IsNaN(Erfinv(-1.5)))
	assert.True(t, math.IsNaN(Erfinv(math.NaN())))
}

func TestErfcinv(t *testing.T) {
	for _, x := range []float64{0.01, 0.1, 0.4, 1, 1.5, 1.9} {
		got := Erfcinv(x)
		want := math.Erfcinv(x)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-15, 1e-9) {
			t.Errorf("Erfcinv(%v) = %v, want %v", x, got, want)
		}
	}

	assert.True(t, math.IsInf(Erfcinv(0), 1))
	assert.True(t, math.IsInf(Erfcinv(2), -1))
	assert.True(t, math.IsNaN(Erfcinv(-0.1)))
	assert.True(t, math.IsNaN(Erfcinv(2.1)))
	assert.True(t, math.IsNaN(Erfcinv(math.NaN())))
}

// erfcinv(x) == erfinv(1-x) on (0, 2).
func TestErfcinvErfinvIdentity(t *testing.T) {
	for _, x := range []float64{0.1, 0.4, 0.75, 1, 1.25, 1.6, 1.9} {
		a, b := Erfcinv(x), Erfinv(1-x)
		if !scalar.EqualWithinAbsOrRel(a, b, 1e-15, 1e-12) {
			t.Errorf("Erfcinv(%v) = %v, Erfinv(1-%v) = %v", x, a, x, b)
		}
	}
}
