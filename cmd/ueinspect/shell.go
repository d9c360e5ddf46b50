// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"ueinspect/anchor"
	"ueinspect/command"
	"ueinspect/core"
	"ueinspect/session"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive REPL over the command surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := newSession()
			disp := command.NewDispatcher(sess)
			return runShell(sess, disp)
		},
	}
}

func runShell(sess *session.Session, disp *command.Dispatcher) error {
	rl, err := readline.New("ueinspect> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := runShellCommand(sess, disp, line); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func runShellCommand(sess *session.Session, disp *command.Dispatcher, line string) error {
	fields := strings.Fields(line)
	name := fields[0]
	rest := fields[1:]

	switch name {
	case "help":
		printShellHelp()
		return nil

	case "listProcesses":
		return printResult(disp.ListProcesses())

	case "attach":
		if len(rest) < 2 {
			return fmt.Errorf("usage: attach <pid> <name>")
		}
		pid, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return err
		}
		return printResult(disp.Attach(&command.AttachRequest{PID: uint32(pid), Name: rest[1]}))

	case "getVersion":
		return printResult(disp.GetVersion())

	case "resolveNamePool":
		return printResult(disp.ResolveAnchor(anchor.NamePoolBase))
	case "resolveObjectArray":
		return printResult(disp.ResolveAnchor(anchor.ObjectArrayBase))
	case "resolveWorld":
		return printResult(disp.ResolveAnchor(anchor.WorldBase))

	case "showAnchors":
		return printResult(disp.ShowAnchors())

	case "parseNames":
		blocks, err := runWithProgress("parsing names", sess.ParseNames)
		if err != nil {
			return err
		}
		fmt.Printf("parsed %d name blocks\n", blocks)
		return nil

	case "parseObjects":
		objects, err := runWithProgress("parsing objects", sess.ParseObjects)
		if err != nil {
			return err
		}
		fmt.Printf("parsed %d objects\n", objects)
		return nil

	case "dump":
		// Debug helper: spew the raw cached record for an address.
		if len(rest) < 1 {
			return fmt.Errorf("usage: dump <addressHex>")
		}
		if err := sess.RequireCatalogReady(); err != nil {
			return err
		}
		addr, err := parseShellAddr(rest[0])
		if err != nil {
			return err
		}
		rec, ok := sess.Cache.Lookup(core.Address(addr))
		if !ok {
			return fmt.Errorf("no cached record at %#x", addr)
		}
		spew.Dump(rec)
		return nil

	case "listPackages":
		return printResult(disp.ListPackages())

	case "listObjects":
		if len(rest) < 2 {
			return fmt.Errorf("usage: listObjects <package> <category>")
		}
		return printResult(disp.ListObjects(&command.ListObjectsRequest{Package: rest[0], Category: rest[1]}))

	case "details":
		if len(rest) < 1 {
			return fmt.Errorf("usage: details <addressHex>")
		}
		addr, err := parseShellAddr(rest[0])
		if err != nil {
			return err
		}
		return printResult(disp.Details(&command.DetailsRequest{Address: addr}))

	case "search":
		if len(rest) < 2 {
			return fmt.Errorf("usage: search <query> <Object|Member>")
		}
		return printResult(disp.Search(&command.SearchRequest{Query: rest[0], Mode: rest[1]}))

	case "findInstances":
		if len(rest) < 1 {
			return fmt.Errorf("usage: findInstances <classAddressHex>")
		}
		return printResult(disp.FindInstances(&command.FindInstancesRequest{ObjectAddressHex: rest[0]}))

	case "inspectHierarchy":
		if len(rest) < 1 {
			return fmt.Errorf("usage: inspectHierarchy <instanceAddressHex>")
		}
		return printResult(disp.InspectHierarchy(&command.InspectHierarchyRequest{InstanceAddressHex: rest[0]}))

	case "inspectInstance":
		if len(rest) < 2 {
			return fmt.Errorf("usage: inspectInstance <instanceAddressHex> <classAddressHex>")
		}
		return printResult(disp.InspectInstance(&command.InspectInstanceRequest{
			InstanceAddressHex: rest[0],
			ClassAddressHex:    rest[1],
		}))

	case "expandArray":
		if len(rest) < 3 {
			return fmt.Errorf("usage: expandArray <arrayAddressHex> <innerType> <count>")
		}
		count, err := strconv.Atoi(rest[2])
		if err != nil {
			return err
		}
		return printResult(disp.ExpandArray(&command.ExpandArrayRequest{
			ArrayAddressHex: rest[0],
			InnerType:       rest[1],
			Count:           int32(count),
		}))

	default:
		return fmt.Errorf("unknown command %q; type help for a list", name)
	}
}

func parseShellAddr(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func printResult(resp interface{}, err error) error {
	if err != nil {
		return err
	}
	spew.Dump(resp)
	return nil
}

func printShellHelp() {
	fmt.Println(`commands:
  listProcesses
  attach <pid> <name>
  getVersion
  resolveNamePool | resolveObjectArray | resolveWorld
  showAnchors
  parseNames
  parseObjects
  dump <addressHex>
  listPackages
  listObjects <package> <category>
  details <addressHex>
  search <query> <Object|Member>
  findInstances <classAddressHex>
  inspectHierarchy <instanceAddressHex>
  inspectInstance <instanceAddressHex> <classAddressHex>
  expandArray <arrayAddressHex> <innerType> <count>
  quit`)
}
