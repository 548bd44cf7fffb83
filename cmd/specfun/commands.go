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

package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-special/internal/catalog"
	"github.com/ajroetker/go-special/internal/render"
	"github.com/ajroetker/go-special/special"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := catalog.Entries()
			list := make([]render.Function, len(entries))
			for i, e := range entries {
				list[i] = render.NewFunction(e)
			}
			return a.renderer(cmd).Functions(list)
		},
	}
}

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval NAME ARGS...",
		Short: "Evaluate one function",
		Long: `Evaluate one function on the given arguments.

Float functions accept NaN, Inf and -Inf. Modular functions take integers
(0x and _ separators allowed) and require m > 0 and non-negative a, b.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			v, err := e.Eval(args[1:])
			if err != nil {
				return err
			}

			a.log.Debug("evaluated",
				zap.String("function", e.ID),
				zap.Strings("args", args[1:]),
				zap.Stringer("value", v),
			)
			return a.renderer(cmd).Result(render.NewResult(e.ID, args[1:], v))
		},
	}

	// Everything after NAME is an argument, so "-0.5" is not read as a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	var (
		from, to, y float64
		steps       int
	)

	cmd := &cobra.Command{
		Use:   "table NAME",
		Short: "Tabulate a float function over an even grid",
		Long: `Tabulate a float function over --steps evenly spaced points from --from
to --to. Two-argument functions vary x and hold y at --y.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			if e.Integer() {
				return fmt.Errorf("%s: %w: table needs a float function", e.ID, catalog.ErrKind)
			}
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}

			t := render.Table{Function: e.ID}
			var fixed []float64
			if e.Arity() == 2 {
				if !cmd.Flags().Changed("y") {
					return fmt.Errorf("%s: %w: --y is required", e.ID, catalog.ErrArity)
				}
				fixed = []float64{y}
				t.Fixed = []string{"y=" + strconv.FormatFloat(y, 'g', -1, 64)}
			}

			point := make([]float64, 0, e.Arity())
			for i := 0; i < steps; i++ {
				x := from
				if steps > 1 {
					x = from + (to-from)*float64(i)/float64(steps-1)
				}

				point = append(append(point[:0], x), fixed...)
				v, err := e.EvalFloat(point...)
				if err != nil {
					return err
				}
				t.Rows = append(t.Rows, render.Row{X: render.Number(x), Value: render.Number(v)})
			}

			a.log.Debug("tabulated",
				zap.String("function", e.ID),
				zap.Float64("from", from),
				zap.Float64("to", to),
				zap.Int("steps", steps),
			)
			return a.renderer(cmd).Table(t)
		},
	}

	cmd.Flags().Float64Var(&from, "from", -1, "first x")
	cmd.Flags().Float64Var(&to, "to", 1, "last x")
	cmd.Flags().IntVar(&steps, "steps", 11, "number of points")
	cmd.Flags().Float64Var(&y, "y", 0, "fixed second argument for two-argument functions")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the Mulmod kernel selected for this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := special.Kernel()
			return a.renderer(cmd).Info(render.Info{
				Kernel:    k.Name,
				Forced:    k.Forced,
				Arch:      k.Arch,
				Features:  k.Features,
				GoVersion: runtime.Version(),
			})
		},
	}
}
