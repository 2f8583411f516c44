package main

import (
	"fmt"
	"os"
)

func main() {
	if _, err := fmt.Fprintln(os.Stdout, renderReport(demoPullRequests)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
