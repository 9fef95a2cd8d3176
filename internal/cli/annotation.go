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
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/gx-org/shaping/annotation"
	"github.com/gx-org/shaping/dtype"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newOpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "op OPERATOR X Y",
		Short: "Print the type of a binary operation, e.g. op __add__ 'Float32[Tensor, \"3\"]' 'Int32[Tensor, \"3\"]'",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := annotation.Parse(args[1])
			if err != nil {
				return err
			}
			y, err := annotation.Parse(args[2])
			if err != nil {
				return err
			}
			res := annotation.BinaryByName(args[0], x, y)
			printNotes(cmd, res.Notes)
			if res.Err != nil {
				return res.Err
			}
			fmt.Fprintln(cmd.OutOrStdout(), annotation.Union(res.Types))
			return nil
		},
	}
}

func newCastCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "cast METHOD X",
		Short:     "Print the type of an array after a conversion method, e.g. cast half 'Float32[Tensor, \"3\"]'",
		Args:      cobra.ExactArgs(2),
		ValidArgs: dtype.CastMethods(),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := annotation.Parse(args[1])
			if err != nil {
				return err
			}
			types, err := annotation.Cast(args[0], x)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), annotation.Union(types))
			return nil
		},
	}
}

func newNewCmd() *cobra.Command {
	var torchDType, constructor string
	cmd := &cobra.Command{
		Use:   "new SIZE...",
		Short: "Print the type of an array created by a constructor, e.g. new --dtype=long 3 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !annotation.IsConstructor(constructor) {
				return errors.Errorf("unknown constructor %q", constructor)
			}
			sizes := make([]int, len(args))
			for i, arg := range args {
				size, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Wrapf(err, "invalid axis length %q", arg)
				}
				sizes[i] = size
			}
			types, err := annotation.FromSizes(sizes, torchDType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), annotation.Union(types))
			return nil
		},
	}
	cmd.Flags().StringVar(&torchDType, "dtype", "", fmt.Sprintf("torch data type, one of %v", dtype.TorchNames()))
	cmd.Flags().StringVar(&constructor, "constructor", "randn", "name of the constructor")
	return cmd
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE",
		Short: "Check the annotations of a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			var lines []string
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrapf(err, "cannot read %s", args[0])
			}
			types, err := annotation.Lint(lines)
			fmt.Fprintf(cmd.OutOrStdout(), "%d valid annotation(s)\n", len(types))
			return err
		},
	}
}
