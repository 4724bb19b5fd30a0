package main

import (
	"os"

	servecmder "github.com/papercomputeco/oasis/cmd/oasis/serve"
)

func main() {
	cmd := servecmder.NewServeCmd()
	cmd.Use = "oasisapi"
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .oasis/ config directory")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
