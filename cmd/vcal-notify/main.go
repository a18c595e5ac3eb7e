package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/pfrederiksen/vcal-notify/internal/cli"
)

func main() {
	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: setting GOMAXPROCS: %v\n", err)
	}

	cli.Execute()
}
