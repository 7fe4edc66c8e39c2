// main is the entry point for the cognia CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cogniahq/cognia/cmd"
	"github.com/cogniahq/cognia/internal/iostore"
)

func main() {
	cmd.SetStoreManager(iostore.Manager)

	err := cmd.Execute()

	// Stores are initialized lazily by command setup; closing an
	// uninitialized manager is a no-op.
	iostore.CloseStores()

	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
