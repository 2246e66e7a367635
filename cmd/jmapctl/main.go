// jmapctl decodes, validates and converts JMAP batches and records, and
// exports contacts and events as vCard and iCalendar.
package main

import (
	"fmt"
	"os"

	"github.com/reoring/gojmap/internal/cli"
)

func main() {
	err := cli.Run(os.Args[1:], cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		os.Exit(coder.ExitCode())
	}
	os.Exit(1)
}
