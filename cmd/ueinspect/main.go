// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The ueinspect tool introspects a live Windows process's runtime
// object catalog. Run "ueinspect help" for a list of commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ueinspect/offsets"
	"ueinspect/session"
)

var (
	workers int
	profile string
)

func main() {
	root := &cobra.Command{
		Use:   "ueinspect",
		Short: "Live-process runtime object catalog introspector",
	}
	root.PersistentFlags().IntVar(&workers, "workers", 0, "worker count for scan/parse pools (0 or less = 4)")
	root.PersistentFlags().StringVar(&profile, "profile", "",
		fmt.Sprintf("offset profile override, one of %v (default: selected by target version)", offsets.Names()))

	root.AddCommand(newListCmd())
	root.AddCommand(newAttachCmd())
	root.AddCommand(newShellCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSession builds the Session for one subcommand invocation, using
// the --workers and --profile flags parsed by the time RunE runs.
func newSession() *session.Session {
	s := session.New(workers)
	s.ProfileName = profile
	return s
}
