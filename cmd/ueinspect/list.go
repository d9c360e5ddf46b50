// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ueinspect/process"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List attachable processes (visible top-level windows)",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := process.ListProcesses()
			if err != nil {
				return err
			}
			t := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(t, "PID\tNAME\n")
			for _, info := range infos {
				fmt.Fprintf(t, "%d\t%s\n", info.PID, info.Name)
			}
			return t.Flush()
		},
	}
}
