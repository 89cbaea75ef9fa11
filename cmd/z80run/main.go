// Command z80run loads a raw Z80 ROM image and runs it against the z80
// core, printing a run summary on exit.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
