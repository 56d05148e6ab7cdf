package main

import (
	"fmt"
	"os"

	"vol/internal/device"
)

func main() {
	cmd := newRootCommand(device.System())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
