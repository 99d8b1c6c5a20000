package main

import (
	"fmt"
	"os"
)

// main runs the appconfig command. Without a subcommand it loads the
// configuration and serves the severity table and environment over HTTP.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
