// Command mapx-convert converts geospatial metadata between ISO19139 XML and
// MapX JSON, and repairs MapX documents against the MapX schema.
//
// Usage:
//
//	mapx-convert iso2mapx [flags] IN [OUT]
//	mapx-convert mapx2iso [flags] IN [OUT]
//	mapx-convert repair   [flags] IN [OUT]
//
// IN may be "-" for standard input; OUT defaults to standard output.
// Warnings are printed on standard error once the conversion ends.
package main

import (
	"errors"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code: 0 on
// success, 1 when the conversion fails (or warns under -strict), 2 on
// usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || isHelp(args[0]) {
		printUsage(stdout)
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		errorf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)

		return 2
	}

	opts, err := parseArgs(args[0], args[1:], stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return 0
		}

		errorf(stderr, "%v\n", err)

		return 2
	}

	return execute(cmd, opts, stdin, stdout, stderr)
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage(w io.Writer) {
	_, _ = io.WriteString(w, `usage:
  mapx-convert iso2mapx [flags] IN [OUT]   convert ISO19139 XML to MapX JSON
  mapx-convert mapx2iso [flags] IN [OUT]   convert MapX JSON to ISO19139 XML
  mapx-convert repair   [flags] IN [OUT]   repair a MapX JSON document

IN may be "-" for standard input; OUT defaults to standard output.
Use "mapx-convert <command> -h" for the flags.
`)
}
