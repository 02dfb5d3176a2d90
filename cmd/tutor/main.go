package main

import (
	"os"
)

func main() {
	// Execute already printed the error; printing it here again would
	// render it twice.
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

// For CLI unit tests...
var osExit = os.Exit
