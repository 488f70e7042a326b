// Package main provides the salesmart CLI, a one-shot batch job that
// rebuilds a SQLite star-schema warehouse from an e-commerce MongoDB store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
