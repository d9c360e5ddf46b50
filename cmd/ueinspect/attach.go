// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ueinspect/anchor"
	"ueinspect/command"
	"ueinspect/process"
)

func newAttachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <pid> [name]",
		Short: "Attach to a process, resolve anchors, and parse its full catalog",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid pid %q: %w", args[0], err)
			}
			name := ""
			if len(args) == 2 {
				name = args[1]
			} else {
				name = lookupName(uint32(pid))
			}

			sess := newSession()
			disp := command.NewDispatcher(sess)

			if _, err := sess.Attach(uint32(pid), name); err != nil {
				return err
			}
			fmt.Printf("attached to %s (pid %d)\n", name, pid)

			for _, a := range []anchor.Name{anchor.NamePoolBase, anchor.ObjectArrayBase, anchor.WorldBase} {
				addr, err := sess.ResolveAnchor(a)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", a, err)
				}
				fmt.Printf("%s resolved at %s\n", a, addr)
			}

			blocks, err := runWithProgress("parsing names", sess.ParseNames)
			if err != nil {
				return err
			}
			fmt.Printf("parsed %d name blocks\n", blocks)

			objects, err := runWithProgress("parsing objects", sess.ParseObjects)
			if err != nil {
				return err
			}
			fmt.Printf("parsed %d objects\n", objects)

			return runShell(sess, disp)
		},
	}
}

func lookupName(pid uint32) string {
	infos, err := process.ListProcesses()
	if err != nil {
		return fmt.Sprintf("pid-%d", pid)
	}
	for _, info := range infos {
		if info.PID == pid {
			return info.Name
		}
	}
	return fmt.Sprintf("pid-%d", pid)
}
