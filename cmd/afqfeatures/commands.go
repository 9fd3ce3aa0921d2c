// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fagan2888/afqinsight/labels"
	"github.com/spf13/cobra"
)

func buildSubcommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <input.csv>",
		Short: "Write the feature matrix as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := a.load(args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if a.output != "" && a.output != "-" {
				f, err := os.Create(a.output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := writeMatrix(w, fm); err != nil {
				return err
			}
			rows, cols := fm.X.Shape()
			a.logger.Infof("wrote %d×%d feature matrix", rows, cols)

			return nil
		},
	}
	cmd.Flags().StringVarP(&a.output, "output", "o", "-", "Output CSV file, - for stdout")

	return cmd
}

func groupsSubcommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups <input.csv>",
		Short: "List the (metric, tract) column groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for g, members := range fm.Groups {
				fmt.Fprintf(out, "%d\t%s\t%d-%d\n", g, fm.GroupKeys[g], members[0], members[len(members)-1])
			}
			if bias, ok := fm.BiasIndex(); ok {
				fmt.Fprintf(out, "-\tbias\t%d\n", bias)
			}

			return nil
		},
	}
}

func labelsSubcommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "labels <input.csv>",
		Short: "List the label set of every column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for j, set := range labels.Derive(fm.Columns, a.cfg.TractSymmetry) {
				names := make([]string, 0, len(set))
				for _, l := range set.Labels() {
					names = append(names, l.String())
				}
				fmt.Fprintf(out, "%d\t%s\t%s\n", j, fm.Columns[j], strings.Join(names, ","))
			}

			return nil
		},
	}
}
