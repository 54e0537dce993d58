// Package ingest reads genealogy exports (CSV or XLSX) into person records.
//
// The loader is the only place that looks at raw cells: sentinel literals,
// sex labels, heterogeneous date formats and generation numbers are
// normalized here into the tagged values of the person package.
package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/logger"
	"github.com/teranos/lineage/person"
)

// Supported table formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Options controls how a table is mapped onto person records
type Options struct {
	Columns     config.ColumnsConfig
	Sex         config.SexConfig
	Shape       string
	Sheet       string
	Sentinel    string
	DateLayouts []string
}

// OptionsFromConfig builds loader options from the data, columns and sex sections
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Columns:     cfg.Columns,
		Sex:         cfg.Sex,
		Shape:       cfg.Data.Shape,
		Sheet:       cfg.Data.Sheet,
		Sentinel:    cfg.Data.Sentinel,
		DateLayouts: cfg.Data.DateLayouts,
	}
}

// Result is the outcome of loading one table
type Result struct {
	Path    string          `json:"path"`
	Format  string          `json:"format"`
	Shape   string          `json:"shape"`
	Records []person.Record `json:"records"`
	Stats   Stats           `json:"stats"`
}

// Stats counts what the loader normalized away
type Stats struct {
	Rows                int `json:"rows"`
	BlankRows           int `json:"blank_rows"`
	DegradedGenerations int `json:"degraded_generations"`
	InvalidDates        int `json:"invalid_dates"`
	UnknownSex          int `json:"unknown_sex"`
}

// Loader turns raw tables into person records
type Loader struct {
	opts   Options
	logger *zap.SugaredLogger
}

// NewLoader creates a loader. A nil logger uses the "ingest" component logger.
func NewLoader(opts Options, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = logger.ComponentLogger("ingest")
	}
	if opts.Sentinel == "" {
		opts.Sentinel = config.DefaultSentinel
	}
	if opts.Shape == "" {
		opts.Shape = config.ShapeAuto
	}
	return &Loader{opts: opts, logger: log}
}

// DetectFormat maps a file extension to a table format
func DetectFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "extension %q", ext),
			"export the tree as .csv or .xlsx",
		)
	}
}

// Load reads the file at path
func (l *Loader) Load(path string) (*Result, error) {
	start := time.Now()

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()
		rows, err = ReadCSV(f)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
	case FormatXLSX:
		rows, err = ReadXLSX(path, l.opts.Sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
	}

	result, err := l.Parse(rows, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	result.Path = path

	l.logger.Infow("Loaded table",
		logger.FieldFile, path,
		logger.FieldFormat, format,
		logger.FieldShape, result.Shape,
		logger.FieldRows, result.Stats.Rows,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return result, nil
}

// Parse maps raw rows (header first) onto records.
// format selects format-specific cell handling (Excel date serials).
func (l *Loader) Parse(rows [][]string, format string) (*Result, error) {
	if len(rows) == 0 {
		return nil, errors.ErrEmptyTable
	}

	layout, err := mapHeader(rows[0], l.opts)
	if err != nil {
		return nil, err
	}

	norm := newNormalizer(l.opts, format == FormatXLSX)
	result := &Result{Format: format, Shape: layout.shape}

	for i, row := range rows[1:] {
		if blankRow(row) {
			result.Stats.BlankRows++
			continue
		}
		// Header is row 1 of the sheet; data row numbering continues from there
		rec := layout.record(row, i+2, norm, &result.Stats)
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 {
		return nil, errors.ErrEmptyTable
	}
	result.Stats.Rows = len(result.Records)

	if result.Stats.DegradedGenerations > 0 || result.Stats.InvalidDates > 0 {
		l.logger.Warnw("Normalized unreadable cells",
			"degraded_generations", result.Stats.DegradedGenerations,
			"invalid_dates", result.Stats.InvalidDates,
		)
	}
	l.logger.Debugw("Parsed table",
		logger.FieldRows, result.Stats.Rows,
		"blank_rows", result.Stats.BlankRows,
		"unknown_sex", result.Stats.UnknownSex,
	)
	return result, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
