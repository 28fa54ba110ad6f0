// Scrape a SIGPROC Filterbank file into a header text file and a raw data file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-sigproc/filterbank"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "filscrape: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := pflag.NewFlagSet("filscrape", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	inFil := flags.String("in_fil", "", "Input Filterbank file path (.fil)")
	outHdr := flags.String("out_hdr", "", "Output header file path (text)")
	outData := flags.String("out_data", "", "Output data matrix file path (binary)")
	verbose := flags.BoolP("verbose", "v", false, "Log every header element.")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Scrape a Filterbank file, producing a header file and a data file.\n\n")
		fmt.Fprintf(stderr, "Usage: filscrape --in_fil FILE --out_hdr FILE --out_data FILE [-v]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return err
	}
	for _, name := range []string{"in_fil", "out_hdr", "out_data"} {
		if flags.Lookup(name).Value.String() == "" {
			flags.Usage()
			return fmt.Errorf("--%s is required", name)
		}
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "filscrape"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	absIn, err := filepath.Abs(*inFil)
	if err != nil {
		return err
	}
	absHdr, err := filepath.Abs(*outHdr)
	if err != nil {
		return err
	}
	absData, err := filepath.Abs(*outData)
	if err != nil {
		return err
	}

	f, err := filterbank.Open(absIn, filterbank.WithLogger(logger))
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Info("Writing header file", "path", absHdr)
	if err := writeFile(absHdr, func(w io.Writer) error {
		return f.Header().WriteText(w)
	}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	logger.Info("Header done")

	logger.Info("Writing data file", "path", absData, "bytes", f.DataSize())
	if err := writeFile(absData, func(w io.Writer) error {
		data, err := f.DataReader()
		if err != nil {
			return err
		}
		_, err = io.Copy(w, data)
		return err
	}); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	logger.Info("Data done")

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
