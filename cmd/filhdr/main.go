// Print the headers of SIGPROC Filterbank files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-sigproc/filterbank"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "filhdr: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("filhdr", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.StringP("format", "f", "text", "Output format: text or yaml.")
	verbose := flags.BoolP("verbose", "v", false, "Log every header element to stderr.")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filhdr [-f text|yaml] [-v] FILE...\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("no input files")
	}
	if *format != "text" && *format != "yaml" {
		return fmt.Errorf("unknown format %q", *format)
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "filhdr"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var failed int
	for _, path := range flags.Args() {
		if err := describe(stdout, path, *format, logger); err != nil {
			logger.Error("cannot read header", "path", path, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, flags.NArg())
	}
	return nil
}

func describe(w io.Writer, path, format string, logger *log.Logger) error {
	f, err := filterbank.Open(path, filterbank.WithLogger(logger))
	if err != nil {
		return err
	}
	defer f.Close()

	hdr := f.Header()
	fmt.Fprintf(w, "=== %s ===\n", path)
	fmt.Fprintf(w, "# data offset %d, %d data bytes", f.DataOffset(), f.DataSize())
	if shape, err := f.Shape(); err == nil {
		fmt.Fprintf(w, ", shape (%d, %d, %d)", shape.NInts, shape.NIFs, shape.NChans)
	}
	fmt.Fprintln(w)

	if format == "yaml" {
		return hdr.WriteYAML(w)
	}
	return hdr.WriteText(w)
}
