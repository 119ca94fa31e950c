// Package main implements flowctl, a command line tool for working with
// exported detector datasets. It can inspect and verify dataset files, export
// processed output as CSV, and maintain the dataset catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/flowscope/core/internal/catalog"
	"github.com/flowscope/core/internal/catalog/drivers"
	"github.com/flowscope/core/internal/datagen"
	"github.com/flowscope/core/internal/dataset"
)

func main() {
	drivers.Ready()

	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "inspect":
		err = runInspect(args[1:])
	case "verify":
		err = runVerify(args[1:])
	case "csv":
		err = runCSV(args[1:])
	case "catalog":
		err = runCatalog(args[1:])
	case "gen":
		err = runGen(args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("flowctl %s: %v", args[0], err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: flowctl <command> [flags]

Commands:
  inspect <file>                      describe a dataset file
  verify <dir>                        scan a directory and register valid files
  csv -in <output.fds> -out <csv>     export processed output as CSV
  catalog list [-kind k]              list registered dataset files
  catalog record <file>               register one dataset file
  gen -kind k -size n [-year y] -out <file>
                                      export a random demo dataset

The catalog database comes from FLOWSCOPE_DB_DRIVER and FLOWSCOPE_DB_DSN
(default: sqlite file flowscope.db). A .env file is honored when present.
`)
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: flowctl inspect <file>")
	}

	summary, err := dataset.Inspect(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Printf("kind:    %s\n", summary.Kind)
	fmt.Printf("records: %d\n", summary.Records)
	if summary.Year != 0 {
		fmt.Printf("year:    %d\n", summary.Year)
	}
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: flowctl verify <dir>")
	}
	dir := fs.Arg(0)

	c, err := catalog.Open(catalog.FromEnv())
	if err != nil {
		return err
	}
	defer c.Close()

	entries, err := c.ScanDir(context.Background(), dir)
	if err != nil {
		return err
	}
	registered := make(map[string]catalog.Entry, len(entries))
	for _, entry := range entries {
		registered[entry.Path] = entry
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*"+dataset.FileExt))
	if err != nil {
		return err
	}
	slices.Sort(paths)

	invalid := 0
	for _, path := range paths {
		entry, ok := registered[path]
		if !ok {
			invalid++
			fmt.Printf("invalid  %s\n", path)
			continue
		}
		fmt.Printf("ok       %-9s  %6d records  %s\n", entry.Kind, entry.Records, path)
	}
	fmt.Printf("%d valid, %d invalid\n", len(entries), invalid)
	return nil
}

func runCSV(args []string) error {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	in := fs.String("in", "", "processed output dataset file")
	out := fs.String("out", "", "destination CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("usage: flowctl csv -in <output.fds> -out <file.csv>")
	}

	set, err := dataset.LoadOutputFlowDataSet(*in)
	if err != nil {
		return err
	}
	if err := dataset.ExportRealDataCSV(set, *out); err != nil {
		return err
	}
	fmt.Printf("wrote %d detector series to %s\n", set.Len(), *out)
	return nil
}

func runCatalog(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: flowctl catalog <list|record> ...")
	}

	c, err := catalog.Open(catalog.FromEnv())
	if err != nil {
		return err
	}
	defer c.Close()
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("catalog list", flag.ExitOnError)
		kind := fs.String("kind", "", "filter by dataset kind")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		entries, err := c.List(ctx, *kind)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			year := "-"
			if entry.Year != 0 {
				year = strconv.Itoa(entry.Year)
			}
			fmt.Printf("%4d  %-9s  %6d records  year %-5s  %s\n",
				entry.ID, entry.Kind, entry.Records, year, entry.Path)
		}
		return nil
	case "record":
		fs := flag.NewFlagSet("catalog record", flag.ExitOnError)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: flowctl catalog record <file>")
		}
		entry, err := c.RegisterFile(ctx, fs.Arg(0))
		if err != nil {
			return err
		}
		fmt.Printf("recorded %s as id %d (%s, %d records)\n",
			entry.Path, entry.ID, entry.Kind, entry.Records)
		return nil
	default:
		return fmt.Errorf("unknown catalog command: %s", args[0])
	}
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	kind := fs.String("kind", dataset.KindLocations, "dataset kind: locations, ground, sections, or output")
	size := fs.Int("size", 10, "number of records to generate")
	year := fs.Int("year", time.Now().Year(), "dataset year annotation")
	out := fs.String("out", "", "destination file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("usage: flowctl gen -kind k -size n [-year y] -out <file>")
	}
	if *size <= 0 {
		return fmt.Errorf("size must be positive, got %d", *size)
	}

	switch *kind {
	case dataset.KindLocations:
		if *size > datagen.IDSpace {
			return fmt.Errorf("locations hold at most %d distinct detectors, got size %d", datagen.IDSpace, *size)
		}
		return dataset.ExportDetectorsLocation(datagen.DetectorsLocation(*size, *year), *out)
	case dataset.KindGround:
		return dataset.ExportGroundFlowData(datagen.GroundFlowData(*size, *year), *out)
	case dataset.KindSections:
		return dataset.ExportDetectorSections(datagen.DetectorSections(*size), *out)
	case dataset.KindOutput:
		return dataset.ExportOutputFlowDataSet(datagen.OutputFlowDataSet(*size, *year), *out)
	default:
		return fmt.Errorf("unknown dataset kind: %s", *kind)
	}
}
