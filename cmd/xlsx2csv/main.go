// Command xlsx2csv converts the worksheets of an XLSX workbook to CSV.
//
// Usage:
//
//	xlsx2csv [flags] FILE
//
// Each selected sheet is written to DIR/<sheet>.csv when -out is given, and
// otherwise to standard output preceded by a "# <sheet>" line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/xlsxcsv"
	"github.com/tsawler/xlsxcsv/internal/logging"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xlsx2csv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: xlsx2csv [flags] FILE\n\nflags:\n")
		fs.PrintDefaults()
	}

	var (
		flagSheets    stringList
		flagOut       string
		flagWorkers   int
		flagRFC4180   bool
		flagList      bool
		flagLogLevel  string
		flagLogFormat string
	)
	fs.Var(&flagSheets, "sheet", "convert only the named sheet (repeatable)")
	fs.StringVar(&flagOut, "out", "", "write one DIR/<sheet>.csv per sheet instead of standard output")
	fs.IntVar(&flagWorkers, "workers", 0, "parts decompressed in parallel (0 = GOMAXPROCS)")
	fs.BoolVar(&flagRFC4180, "rfc4180", false, `escape embedded quotes as "" instead of \"`)
	fs.BoolVar(&flagList, "list", false, "list sheet names and exit")
	fs.StringVar(&flagLogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&flagLogFormat, "log-format", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	if err := logging.ValidateFormat(flagLogFormat); err != nil {
		fmt.Fprintf(stderr, "xlsx2csv: %v\n", err)
		return exitUsage
	}

	filename := fs.Arg(0)
	logger := logging.New(flagLogLevel, flagLogFormat, stderr)

	conv := xlsxcsv.Open(filename).Workers(flagWorkers).Logger(logger)

	if flagList {
		names, err := conv.SheetNames()
		if err != nil {
			fmt.Fprintf(stderr, "xlsx2csv: %v\n", err)
			return exitError
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	if len(flagSheets) > 0 {
		conv = conv.Sheets(flagSheets...)
	}
	if flagRFC4180 {
		conv = conv.DoubleQuotes()
	}

	sheets, err := conv.CSV()
	if err != nil {
		fmt.Fprintf(stderr, "xlsx2csv: %v\n", err)
		return exitError
	}
	if len(sheets) == 0 && len(flagSheets) > 0 {
		fmt.Fprintf(stderr, "xlsx2csv: no sheet named %s in %s\n", flagSheets.String(), filename)
		return exitError
	}

	if flagOut != "" {
		if err := writeFiles(flagOut, sheets); err != nil {
			fmt.Fprintf(stderr, "xlsx2csv: %v\n", err)
			return exitError
		}
		logger.Info("conversion complete", "file", filename, "sheets", len(sheets), "out", flagOut)
		return exitOK
	}

	for _, s := range sheets {
		fmt.Fprintf(stdout, "# %s\n%s\n", s.SheetName, s.CSV)
	}
	return exitOK
}

// writeFiles writes each sheet to dir/<sheet>.csv, creating dir if needed.
func writeFiles(dir string, sheets []xlsxcsv.SheetCSV) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, s := range sheets {
		path := filepath.Join(dir, fileName(s.SheetName)+".csv")
		if err := os.WriteFile(path, []byte(s.CSV+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing sheet %q: %w", s.SheetName, err)
		}
	}
	return nil
}

// fileName makes a sheet name safe to use as a file name.
func fileName(sheet string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, sheet)

	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "sheet"
	}
	return name
}
