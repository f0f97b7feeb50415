package xlsxcsv

import (
	"log/slog"
	"slices"

	"github.com/tsawler/xlsxcsv/xlsx"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Sheet selection; a sheet matching any name or id is selected. Both
	// empty means all sheets.
	sheetNames []string
	sheetIDs   []string

	// Extra predicate applied after name/id selection
	filter func(xlsx.SheetInfo) bool

	// Processing options
	workers int // 0 means GOMAXPROCS
	quoting xlsx.Quoting
	logger  *slog.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		sheetNames: nil, // nil means all sheets
		sheetIDs:   nil,
		workers:    0,
		quoting:    xlsx.QuoteBackslash,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		filter:  o.filter,
		workers: o.workers,
		quoting: o.quoting,
		logger:  o.logger,
	}

	if o.sheetNames != nil {
		newOpts.sheetNames = slices.Clone(o.sheetNames)
	}
	if o.sheetIDs != nil {
		newOpts.sheetIDs = slices.Clone(o.sheetIDs)
	}

	return newOpts
}

// selects reports whether a sheet passes the configured selection.
func (o ConvertOptions) selects(info xlsx.SheetInfo) bool {
	if len(o.sheetNames) > 0 || len(o.sheetIDs) > 0 {
		if !slices.Contains(o.sheetNames, info.Name) && !slices.Contains(o.sheetIDs, info.SheetID) {
			return false
		}
	}
	if o.filter != nil && !o.filter(info) {
		return false
	}
	return true
}

// xlsxOptions translates the options for xlsx.Open.
func (o ConvertOptions) xlsxOptions() []xlsx.Option {
	opts := []xlsx.Option{xlsx.WithWorkers(o.workers)}
	if o.logger != nil {
		opts = append(opts, xlsx.WithLogger(o.logger))
	}
	return opts
}
