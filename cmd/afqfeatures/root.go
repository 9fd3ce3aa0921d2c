// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fagan2888/afqinsight/features"
	"github.com/fagan2888/afqinsight/table"
	"github.com/spf13/cobra"
)

// app carries the resolved settings shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	output     string

	// flag values; applied over the config file only when set
	format      string
	extrapolate bool
	noBias      bool
	symmetry    bool

	cfg    Config
	logger log.Interface
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "afqfeatures",
		Short:        "Build group-annotated feature matrices from tractometry tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose log output")
	flags.StringVar(&a.format, "format", table.Long.String(), "Input layout: long or wide")
	flags.BoolVar(&a.extrapolate, "extrapolate", false, "Extrapolate linearly at series ends")
	flags.BoolVar(&a.noBias, "no-bias", false, "Do not append a bias column")
	flags.BoolVar(&a.symmetry, "symmetry", true, "Add symmetrized tract labels")

	root.AddCommand(buildSubcommand(a), groupsSubcommand(a), labelsSubcommand(a))

	return root
}

// setup configures logging and merges the config file with the flags.
func (a *app) setup(cmd *cobra.Command) error {
	logger := &log.Logger{Handler: cli.New(cmd.ErrOrStderr()), Level: log.InfoLevel}
	if a.verbose {
		logger.Level = log.DebugLevel
	}
	a.logger = logger

	a.cfg = DefaultConfig()
	if a.configPath != "" {
		logger.Debugf("Reading config file from %s", a.configPath)
		c, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		a.cfg.Format = a.format
	}
	if flags.Changed("extrapolate") {
		a.cfg.Extrapolate = a.extrapolate
	}
	if flags.Changed("no-bias") {
		a.cfg.AddBias = !a.noBias
	}
	if flags.Changed("symmetry") {
		a.cfg.TractSymmetry = a.symmetry
	}

	return nil
}

// load reads and builds the feature matrix for the input at path.
func (a *app) load(path string) (*features.FeatureMatrix, error) {
	format, err := table.ParseFormat(a.cfg.Format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := table.Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.WithFields(log.Fields{
		"records":  tbl.Len(),
		"subjects": len(tbl.Subjects()),
		"format":   format.String(),
	}).Debug("table loaded")

	return features.Build(tbl,
		features.WithExtrapolation(a.cfg.Extrapolate),
		features.WithBias(a.cfg.AddBias),
		features.WithLogger(a.logger),
	)
}
