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

// Package render writes specfun results as text, JSON, YAML or TOML.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/ajroetker/go-special/internal/catalog"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML, TOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Number is a float64 that survives JSON encoding when it is NaN or ±Inf;
// those are written as the strings "NaN", "+Inf" and "-Inf".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(n.String())), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Result is one evaluation.
type Result struct {
	Function string   `json:"function" yaml:"function" toml:"function"`
	Args     []string `json:"args" yaml:"args" toml:"args"`
	Value    any      `json:"value" yaml:"value" toml:"value"`
}

// NewResult converts a catalog value into its rendered form.
func NewResult(id string, args []string, v catalog.Value) Result {
	r := Result{Function: id, Args: args}
	if v.Integer {
		r.Value = v.Int
	} else {
		r.Value = Number(v.Float)
	}
	return r
}

// Row is one sample of a Table.
type Row struct {
	X     Number `json:"x" yaml:"x" toml:"x"`
	Value Number `json:"value" yaml:"value" toml:"value"`
}

// Table is a function sampled over a grid of its first argument, with any
// remaining arguments held fixed.
type Table struct {
	Function string   `json:"function" yaml:"function" toml:"function"`
	Fixed    []string `json:"fixed,omitempty" yaml:"fixed,omitempty" toml:"fixed,omitempty"`
	Rows     []Row    `json:"rows" yaml:"rows" toml:"rows"`
}

// Function is the listing form of a catalog entry.
type Function struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Params      []string `json:"params" yaml:"params" toml:"params"`
	Returns     string   `json:"returns" yaml:"returns" toml:"returns"`
}

// NewFunction converts a catalog entry for listing.
func NewFunction(e catalog.Entry) Function {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.Name
	}
	return Function{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Params:      params,
		Returns:     e.Returns,
	}
}

// Info describes the runtime the library selected.
type Info struct {
	Kernel    string   `json:"kernel" yaml:"kernel" toml:"kernel"`
	Forced    bool     `json:"forced" yaml:"forced" toml:"forced"`
	Arch      string   `json:"arch" yaml:"arch" toml:"arch"`
	Features  []string `json:"features" yaml:"features" toml:"features"`
	GoVersion string   `json:"go_version" yaml:"go_version" toml:"go_version"`
}

// Renderer writes values to an io.Writer in one format.
type Renderer struct {
	format Format
	w      io.Writer
}

// New creates a Renderer.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{format: format, w: w}
}

// Result writes a single evaluation. Text output is the bare value.
func (r *Renderer) Result(res Result) error {
	if r.format == Text {
		_, err := fmt.Fprintln(r.w, res.Value)
		return err
	}
	return r.encode(res)
}

// Table writes a sampled function.
func (r *Renderer) Table(t Table) error {
	if r.format != Text {
		return r.encode(t)
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "x\t"+t.Function)
	for _, row := range t.Rows {
		fmt.Fprintf(tw, "%v\t%v\n", row.X, row.Value)
	}
	return tw.Flush()
}

// Functions writes the catalog listing.
func (r *Renderer) Functions(list []Function) error {
	if r.format != Text {
		return r.encode(struct {
			Functions []Function `json:"functions" yaml:"functions" toml:"functions"`
		}{list})
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tARGS\tRETURNS\tDESCRIPTION")
	for _, f := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, strings.Join(f.Params, ","), f.Returns, f.Description)
	}
	return tw.Flush()
}

// Info writes the dispatch report.
func (r *Renderer) Info(info Info) error {
	if r.format != Text {
		return r.encode(info)
	}

	features := strings.Join(info.Features, " ")
	if features == "" {
		features = "-"
	}
	kernel := info.Kernel
	if info.Forced {
		kernel += " (forced)"
	}

	_, err := fmt.Fprintf(r.w, "mulmod kernel: %s\narch: %s\nfeatures: %s\ngo: %s\n",
		kernel, info.Arch, features, info.GoVersion)
	return err
}

func (r *Renderer) encode(v any) error {
	var (
		data []byte
		err  error
	)
	switch r.format {
	case JSON:
		data, err = sonic.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case YAML:
		data, err = yaml.Marshal(v)
	case TOML:
		data, err = toml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", r.format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.format, err)
	}

	_, err = r.w.Write(data)
	return err
}
