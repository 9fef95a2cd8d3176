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

// Package cli implements the shapecheck command line.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRoot returns the root command with all its subcommands.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "shapecheck",
		Short: "Check array shape and data type annotations",
		Long: `shapecheck parses array annotations such as Float32[Tensor, "batch 3 224 224"],
checks whether two shapes or data types are compatible and computes the
type of binary operations.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newParseCmd(),
		newCheckCmd(),
		newPromoteCmd(),
		newExpandCmd(),
		newOpCmd(),
		newCastCmd(),
		newNewCmd(),
		newLintCmd(),
	)
	return root
}

// Execute runs the root command with the given arguments.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func printNotes(cmd *cobra.Command, notes []string) {
	for _, note := range notes {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %s\n", note)
	}
}
