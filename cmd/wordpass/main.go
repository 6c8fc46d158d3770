package main

import (
	"os"

	"github.com/wordpass/wordpass-go/internal/cli"
)

var version = "dev" // set by the linker

func main() {
	if err := cli.Execute(version); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
