package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/forgeui/themegen/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{
		Level:  "info",
		Pretty: term.IsTerminal(int(os.Stderr.Fd())),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
