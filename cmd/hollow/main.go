// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Command hollow imports snapshots into the object store and projects
// them as lazily materializing FUSE filesystems.
package main

import (
	"fmt"
	"os"
)

const usage = `usage: hollow <command> [flags]

Commands:
  import    import a directory as a snapshot commit
  mount     project a snapshot commit at a mountpoint
  show      print a commit's tree listing
  version   print version information

Run 'hollow <command> --help' for command-specific flags.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("command required")
	}

	switch args[0] {
	case "import":
		return runImport(args[1:])
	case "mount":
		return runMount(args[1:])
	case "show":
		return runShow(args[1:])
	case "version":
		return runVersion(args[1:])
	case "help", "--help", "-h":
		fmt.Println(usage)
		return nil
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
