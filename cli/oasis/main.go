package main

import (
	"os"

	oasiscmder "github.com/papercomputeco/oasis/cmd/oasis"
)

func main() {
	cmd := oasiscmder.NewOasisCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
