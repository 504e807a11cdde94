// cafog - correction of glycation artifacts in glycoform abundances
package main

import (
	"fmt"
	"os"

	"github.com/cdl-biosimilars/cafog/cmd/cafog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
