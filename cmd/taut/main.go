// Command taut checks propositional sentences for tautologies.
package main

import (
	"os"
)

func main() {
	cmd := RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
