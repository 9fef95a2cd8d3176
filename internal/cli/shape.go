// Copyright 2025 Google LLC
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

package cli

import (
	"fmt"
	"slices"

	"github.com/gx-org/shaping/base/stringseq"
	"github.com/gx-org/shaping/dtype"
	"github.com/gx-org/shaping/shape"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "parse SPEC",
		Short: "Parse a shape specification and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := shape.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
			if !verbose {
				return nil
			}
			for i, d := range s {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %#v\n", i, d)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the axes one per line")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var broadcast bool
	cmd := &cobra.Command{
		Use:   "check X Y",
		Short: "Check that two shapes are compatible and print the resulting shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := shape.Parse(args[0])
			if err != nil {
				return err
			}
			ys, err := shape.Parse(args[1])
			if err != nil {
				return err
			}
			zs, err := shape.Unify(xs, ys, broadcast)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), zs.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&broadcast, "broadcast", true, "allow broadcasting")
	return cmd
}

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote X Y",
		Short: "Print the data type two data types promote to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := dtype.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := dtype.Parse(args[1])
			if err != nil {
				return err
			}
			z, err := dtype.Promote(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
			return nil
		},
	}
}

func newExpandCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "expand NAME",
		Short: "Print the concrete data types of a data type family",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, family := range dtype.Families() {
					members := stringseq.Join(slices.Values(dtype.Members(family)), " ")
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", family, members)
				}
				return nil
			}
			leaves, err := dtype.ExpandName(args[0])
			if err != nil {
				return errors.WithMessage(err, "cannot expand")
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringseq.Join(slices.Values(leaves), " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the families and their direct members instead")
	return cmd
}
