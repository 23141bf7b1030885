// campusnav answers walking-route questions over a campus graph.
//
// Usage:
//
//	campusnav locations
//	campusnav path <start> <end> [--plain]
//	campusnav longest <from>
//	campusnav serve
//
// Every command accepts --config, --graph and --log-level.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
