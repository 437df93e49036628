// Command netclass groups a host's network interfaces into loopback,
// private and public from a collected fact document.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "netclass: %v\n", err)
		}
		os.Exit(1)
	}
}
