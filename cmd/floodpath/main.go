// Command floodpath plans and simulates travel over flood networks.
//
//	floodpath solve    -c net.yaml [--values] [--chart conv.html]
//	floodpath simulate -c net.yaml [--trials N] [--seed S] [--verbose-trace] [--chart run.html]
//	floodpath generate grid|path|cycle|ladder|random [flags] [-o net.yaml]
//
// Global flags: --log-level, --metrics-file, --no-color.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "floodpath:", err)
		os.Exit(1)
	}
}
