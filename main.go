package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/vadiminshakov/factloop/core/driver"
	"github.com/vadiminshakov/factloop/ui"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

// run prints driver.Default to stdout. Output failures are logged to stderr;
// the exit code is always 0.
func run(stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	if err := driver.Run(context.Background(), stdout, driver.Default); err != nil {
		logger.Print(ui.Warning(err.Error()))
	}

	return 0
}
