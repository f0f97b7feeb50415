package xlsxcsv_test

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tsawler/xlsxcsv"
	"github.com/tsawler/xlsxcsv/xlsx"
)

// These examples verify the documented usage compiles. They have no
// expected output because they need a workbook on disk.

func Example_convert() {
	sheets, err := xlsxcsv.Open("report.xlsx").CSV()
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range sheets {
		fmt.Printf("# %s\n%s\n", s.SheetName, s.CSV)
	}
}

func Example_withOptions() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sheets, err := xlsxcsv.Open("report.xlsx").
		Sheets("Summary").
		SheetIDs("4").
		Filter(func(s xlsxcsv.SheetInfo) bool { return s.Index < 10 }).
		Workers(4).
		DoubleQuotes(). // RFC 4180 quoting
		Logger(logger).
		CSV()
	_ = sheets
	_ = err
}

func Example_lowLevel() {
	doc, err := xlsx.OpenFile("report.xlsx", xlsx.WithWorkers(2))
	if err != nil {
		log.Fatal(err)
	}

	for _, info := range doc.Sheets {
		ws, err := doc.Worksheet(info)
		if err != nil {
			log.Fatal(err)
		}
		rows, err := ws.Resolve(doc.SharedStrings, doc.Styles)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(info.Name, len(rows), xlsx.SerializeCSV(rows))
	}
}

func Example_must() {
	names := xlsxcsv.Must(xlsxcsv.Open("report.xlsx").SheetNames())
	fmt.Println(names)
}
