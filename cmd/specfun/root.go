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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-special/internal/config"
	"github.com/ajroetker/go-special/internal/logging"
	"github.com/ajroetker/go-special/internal/render"
)

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	format  string
	verbose bool

	cfg    *config.Config
	log    *logging.Logger
	output render.Format
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "specfun",
		Short:         "Evaluate special functions and modular arithmetic",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.format, "format", "o", "", "output format: text, json, yaml or toml (default $SPECFUN_FORMAT or text)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newListCmd(a),
		newEvalCmd(a),
		newTableCmd(a),
		newInfoCmd(a),
	)
	return root
}

// setup merges environment configuration with flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = a.format
	}
	if a.output, err = render.ParseFormat(format); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Development = cfg.LogDev
	if a.verbose {
		logCfg = logging.DevelopmentConfig()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = logger

	a.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("format", string(a.output)),
	)
	return nil
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.output)
}
