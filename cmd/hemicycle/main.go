// SPDX-License-Identifier: MIT

// Command hemicycle analyzes roll-call votes: it builds a legislator
// similarity graph and reports pivots, piliers and group leaders.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
