// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/hollowfs/hollow/lib/version"
)

func runVersion(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("version takes no arguments")
	}
	fmt.Printf("hollow %s\n", version.Full())
	return nil
}
