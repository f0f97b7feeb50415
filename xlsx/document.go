package xlsx

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"

	"github.com/tsawler/xlsxcsv/internal/filters"
	"github.com/tsawler/xlsxcsv/zipread"
)

// Well-known part names.
const (
	manifestSuffix    = "/workbook.xml"
	sharedStringsPart = "xl/sharedStrings.xml"
	stylesPart        = "xl/styles.xml"
)

// Option configures document assembly.
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithWorkers sets how many parts are decompressed in parallel.
// Values < 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger for assembly and conversion.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Document is a workbook whose parts have all been decompressed, with the
// manifest, shared strings and styles parsed. Worksheets are parsed on demand.
//
// Tables belong to the archive they were built from and are never shared
// between documents.
type Document struct {
	Sheets        []SheetInfo
	SharedStrings SharedStringTable
	Styles        StyleTable

	parts  map[string]string // decoded text keyed by archive path
	order  []string          // archive paths in central-directory order
	logger *slog.Logger
}

// Assemble reads every entry of a, decompresses the entries in parallel and
// parses the workbook manifest, shared strings and styles.
func Assemble(a *zipread.Archive, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)

	raw, err := a.ReadAll()
	if err != nil {
		return nil, err
	}

	parts, order, err := decompressParts(raw, cfg)
	if err != nil {
		return nil, err
	}

	doc := &Document{parts: parts, order: order, logger: cfg.logger}

	manifest, ok := doc.findPart(func(name string) bool {
		return strings.HasSuffix(name, manifestSuffix)
	})
	if !ok {
		return nil, &PartError{Part: "*" + manifestSuffix, Err: fmt.Errorf("%w: workbook manifest", ErrMissingPart)}
	}
	if doc.Sheets, err = parseManifest(parts[manifest]); err != nil {
		return nil, &PartError{Part: manifest, Err: err}
	}

	text, ok := parts[sharedStringsPart]
	if !ok {
		return nil, &PartError{Part: sharedStringsPart, Err: fmt.Errorf("%w: shared strings", ErrMissingPart)}
	}
	if doc.SharedStrings, err = parseSharedStrings(text); err != nil {
		return nil, &PartError{Part: sharedStringsPart, Err: err}
	}

	text, ok = parts[stylesPart]
	if !ok {
		return nil, &PartError{Part: stylesPart, Err: fmt.Errorf("%w: styles", ErrMissingPart)}
	}
	if doc.Styles, err = parseStyles(text); err != nil {
		return nil, &PartError{Part: stylesPart, Err: err}
	}

	cfg.logger.Debug("assembled workbook",
		"parts", len(order),
		"sheets", len(doc.Sheets),
		"shared_strings", len(doc.SharedStrings),
		"styles", len(doc.Styles))
	return doc, nil
}

// decompressParts decompresses and decodes every entry on a bounded worker
// pool, then keys the results by entry name. When two entries share a name
// the first in archive order wins.
func decompressParts(raw []*zipread.RawEntry, cfg config) (map[string]string, []string, error) {
	texts := make([]string, len(raw))

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, e := range raw {
		g.Go(func() error {
			text, err := decodePart(e)
			if err != nil {
				return &PartError{Part: e.Name, Err: err}
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	parts := make(map[string]string, len(raw))
	order := make([]string, 0, len(raw))
	for i, e := range raw {
		if _, dup := parts[e.Name]; dup {
			cfg.logger.Warn("ignoring duplicate archive entry", "name", e.Name)
			continue
		}
		parts[e.Name] = texts[i]
		order = append(order, e.Name)
	}
	cfg.logger.Debug("decompressed parts", "parts", len(order), "workers", cfg.workers)
	return parts, order, nil
}

// decodePart decompresses one entry and decodes it as UTF-8 text.
func decodePart(e *zipread.RawEntry) (string, error) {
	var data []byte
	switch e.Method {
	case zipread.Stored:
		data = e.Data
	case zipread.Deflated:
		var err error
		if data, err = filters.Inflate(e.Data); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: unsupported compression method %s", ErrFormat, e.Method)
	}
	return decodeText(data)
}

// decodeText decodes UTF-8 part content, dropping a leading byte order mark
// and replacing invalid sequences with U+FFFD.
func decodeText(data []byte) (string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: decoding UTF-8: %w", ErrFormat, err)
	}
	return string(out), nil
}

// parseManifest reads the sheet list from the workbook manifest, in
// declaration order.
func parseManifest(text string) ([]SheetInfo, error) {
	var wb workbookXML
	if err := xml.Unmarshal([]byte(text), &wb); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	sheets := make([]SheetInfo, len(wb.Sheets))
	for i, s := range wb.Sheets {
		sheets[i] = SheetInfo{Name: s.Name, SheetID: s.SheetID, Index: i}
	}
	return sheets, nil
}

// findPart returns the first part, in archive order, whose name satisfies
// match.
func (d *Document) findPart(match func(name string) bool) (string, bool) {
	for _, name := range d.order {
		if match(name) {
			return name, true
		}
	}
	return "", false
}

// Worksheet parses the XML of the given sheet. The part is located by
// suffix-matching xl/worksheets/sheet{SheetID}.xml against the archive paths.
func (d *Document) Worksheet(info SheetInfo) (*Worksheet, error) {
	want := fmt.Sprintf("xl/worksheets/sheet%s.xml", info.SheetID)
	name, ok := d.findPart(func(n string) bool {
		return strings.HasSuffix(n, want)
	})
	if !ok {
		return nil, &PartError{Part: want, Err: fmt.Errorf("%w: worksheet %q", ErrMissingPart, info.Name)}
	}

	ws, err := parseWorksheet(d.parts[name], info, name)
	if err != nil {
		return nil, &PartError{Part: name, Err: err}
	}
	return ws, nil
}

// Part returns the decoded text of an archive part.
func (d *Document) Part(name string) (string, bool) {
	text, ok := d.parts[name]
	return text, ok
}

// PartNames returns the archive paths of all parts in archive order.
func (d *Document) PartNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// SheetNames returns the names of all sheets in manifest order.
func (d *Document) SheetNames() []string {
	names := make([]string, len(d.Sheets))
	for i, s := range d.Sheets {
		names[i] = s.Name
	}
	return names
}

// SheetByName returns the sheet with the given name.
func (d *Document) SheetByName(name string) (SheetInfo, error) {
	for _, s := range d.Sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return SheetInfo{}, fmt.Errorf("sheet not found: %s", name)
}
