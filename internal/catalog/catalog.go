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

// Package catalog describes the special functions exposed by the specfun
// command and evaluates them from string arguments.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ajroetker/go-special/special"
)

var (
	// ErrUnknownFunction is returned by Lookup for names not in the catalog.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrArity means the wrong number of arguments was supplied.
	ErrArity = errors.New("wrong number of arguments")

	// ErrDomain means an argument breaks a precondition the library
	// leaves unchecked (m > 0, non-negative operands).
	ErrDomain = errors.New("argument out of domain")

	// ErrKind means a float evaluation was asked of an integer function.
	ErrKind = errors.New("wrong argument kind")
)

// Parameter describes one argument of a function.
type Parameter struct {
	Name        string
	Type        string // "number" or "integer"
	Description string
}

// Entry is one catalogued function.
type Entry struct {
	ID          string
	Name        string
	Description string
	Parameters  []Parameter
	Returns     string

	floatFn func(args []float64) float64
	intFn   func(args []int64) int64
}

// Value is the result of an evaluation.
type Value struct {
	Float   float64
	Int     int64
	Integer bool
}

// String formats the value the way the text output shows it.
func (v Value) String() string {
	if v.Integer {
		return strconv.FormatInt(v.Int, 10)
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}

// Arity returns the number of arguments the function takes.
func (e Entry) Arity() int {
	return len(e.Parameters)
}

// Integer reports whether the function works on int64 arguments.
func (e Entry) Integer() bool {
	return e.intFn != nil
}

// Eval parses args and evaluates the function.
func (e Entry) Eval(args []string) (Value, error) {
	if len(args) != e.Arity() {
		return Value{}, e.arityError(len(args))
	}

	if e.Integer() {
		ints := make([]int64, len(args))
		for i, s := range args {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%s: argument %s: %w", e.ID, e.Parameters[i].Name, err)
			}
			ints[i] = n
		}
		return e.evalInt(ints)
	}

	floats := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%s: argument %s: %w", e.ID, e.Parameters[i].Name, err)
		}
		floats[i] = f
	}
	v, err := e.EvalFloat(floats...)
	if err != nil {
		return Value{}, err
	}
	return Value{Float: v}, nil
}

// EvalFloat evaluates a float function on already parsed arguments.
func (e Entry) EvalFloat(args ...float64) (float64, error) {
	if e.Integer() {
		return 0, fmt.Errorf("%s: %w: takes integers", e.ID, ErrKind)
	}
	if len(args) != e.Arity() {
		return 0, e.arityError(len(args))
	}
	return e.floatFn(args), nil
}

func (e Entry) evalInt(args []int64) (Value, error) {
	a, b, m := args[0], args[1], args[2]
	if m <= 0 {
		return Value{}, fmt.Errorf("%s: %w: modulus must be positive, got %d", e.ID, ErrDomain, m)
	}
	if a < 0 || b < 0 {
		return Value{}, fmt.Errorf("%s: %w: operands must be non-negative", e.ID, ErrDomain)
	}
	return Value{Int: e.intFn(args), Integer: true}, nil
}

func (e Entry) arityError(got int) error {
	return fmt.Errorf("%s: %w: want %d, got %d", e.ID, ErrArity, e.Arity(), got)
}

// Lookup finds a function by ID, ignoring case.
func Lookup(id string) (Entry, error) {
	e, ok := entries[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFunction, id)
	}
	return e, nil
}

// Entries returns every catalogued function sorted by ID.
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var (
	paramX = Parameter{Name: "x", Type: "number", Description: "Input value"}
	paramY = Parameter{Name: "y", Type: "number", Description: "Logarithm argument"}

	modularParams = []Parameter{
		{Name: "a", Type: "integer", Description: "Non-negative operand"},
		{Name: "b", Type: "integer", Description: "Non-negative operand or exponent"},
		{Name: "m", Type: "integer", Description: "Positive modulus"},
	}
)

func unary(id, name, desc string, fn func(float64) float64) Entry {
	return Entry{
		ID:          id,
		Name:        name,
		Description: desc,
		Parameters:  []Parameter{paramX},
		Returns:     "number",
		floatFn:     func(a []float64) float64 { return fn(a[0]) },
	}
}

func binary(id, name, desc string, fn func(float64, float64) float64) Entry {
	return Entry{
		ID:          id,
		Name:        name,
		Description: desc,
		Parameters:  []Parameter{paramX, paramY},
		Returns:     "number",
		floatFn:     func(a []float64) float64 { return fn(a[0], a[1]) },
	}
}

func modular(id, name, desc string, fn func(a, b, m int64) int64) Entry {
	return Entry{
		ID:          id,
		Name:        name,
		Description: desc,
		Parameters:  modularParams,
		Returns:     "integer",
		intFn:       func(a []int64) int64 { return fn(a[0], a[1], a[2]) },
	}
}

var entries = index(
	binary("xlogy", "X Log Y", "x*log(y), 0 when x is 0 and y is not NaN", special.Xlogy),
	binary("xlog1py", "X Log1p Y", "x*log1p(y), 0 when x is 0 and y is not NaN", special.Xlog1py),
	unary("expit", "Logistic Sigmoid", "1/(1+exp(-x))", special.Expit),
	unary("logit", "Logit", "log(x/(1-x)), inverse of expit", special.Logit),
	unary("log1mexp", "Log One Minus Exp", "log(1-exp(x)) for x <= 0", special.Log1mexp),
	unary("log1pexp", "Softplus", "log(1+exp(x))", special.Log1pexp),
	unary("logabs", "Log Abs", "log(|x|)", special.Logabs),
	unary("sinc", "Sinc", "sin(x)/x, 1 at x = 0", special.Sinc),
	unary("erfinv", "Inverse Error Function", "erfinv(x) for x in (-1, 1)", special.Erfinv),
	unary("erfcinv", "Inverse Complementary Error Function", "erfcinv(x) for x in (0, 2)", special.Erfcinv),
	unary("ndtri", "Inverse Normal CDF", "standard normal quantile of p in [0, 1]", special.Ndtri),
	modular("mulmod", "Modular Multiplication", "(a*b) mod m without overflow", special.Mulmod),
	modular("powmod", "Modular Exponentiation", "a^b mod m by repeated squaring", special.Powmod),
)

func index(list ...Entry) map[string]Entry {
	m := make(map[string]Entry, len(list))
	for _, e := range list {
		m[e.ID] = e
	}
	return m
}
