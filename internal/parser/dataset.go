// Package parser provides utilities for parsing and transforming input data.
// It turns the country CSV into dataset records and reports the fields it
// could not convert.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/gdpscope/core/internal/logging"
	"github.com/gdpscope/core/internal/models"
)

// Column headers the dataset must provide.
const (
	ColumnCountryName = "Country Name"
	ColumnCountryCode = "Country Code"
	ColumnYear        = "Year"
	ColumnGDP         = "GDP"
	ColumnPopulation  = "Population"
)

var requiredColumns = []string{ColumnCountryName, ColumnCountryCode, ColumnYear, ColumnGDP, ColumnPopulation}

var (
	errNotFinite = errors.New("value is not a finite number")
	errNotYear   = errors.New("value is not a whole year")
)

// Report summarises the data-quality problems found while parsing.
type Report struct {
	Rows        int
	DroppedRows int
	SkippedRows int
	Errors      []*models.FieldParseError
}

// Affected returns the number of rows with at least one bad field.
func (r *Report) Affected() int {
	return r.DroppedRows + r.SkippedRows
}

// LoadDataset opens name from fsys and parses it.
func LoadDataset(fsys fs.FS, name string) (*models.Dataset, *Report, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, &models.DataLoadError{Source: name, Err: err}
	}
	defer f.Close()

	return ParseDataset(f, name)
}

// ParseDataset reads a CSV with a header row. Rows with an unparseable Year
// are dropped; an unparseable GDP or Population is kept as NaN. Both cases
// are listed in the returned Report.
func ParseDataset(r io.Reader, source string) (*models.Dataset, *Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &models.DataLoadError{Source: source, Err: fmt.Errorf("empty dataset")}
	}
	if err != nil {
		return nil, nil, &models.DataLoadError{Source: source, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, nil, &models.DataLoadError{Source: source, Err: err}
	}

	dataset := &models.Dataset{Source: source, Records: []models.Record{}}
	report := &Report{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &models.DataLoadError{Source: source, Err: fmt.Errorf("failed to read row: %w", err)}
		}

		line, _ := reader.FieldPos(0)
		report.Rows++

		rec, rowErrs, keep := parseRow(row, columns, line)
		report.Errors = append(report.Errors, rowErrs...)

		if !keep {
			report.DroppedRows++
			continue
		}
		if len(rowErrs) > 0 {
			report.SkippedRows++
		}

		dataset.Records = append(dataset.Records, rec)
	}

	if report.Affected() > 0 {
		logging.Logger().Warn("dataset rows with unparseable fields",
			"source", source,
			"rows", report.Rows,
			"dropped", report.DroppedRows,
			"partial", report.SkippedRows)
	}

	logging.Logger().Info("dataset loaded", "source", source, "records", len(dataset.Records))

	return dataset, report, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int, line int) (models.Record, []*models.FieldParseError, bool) {
	cell := func(name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var errs []*models.FieldParseError

	year, err := parseYear(cell(ColumnYear))
	if err != nil {
		errs = append(errs, &models.FieldParseError{Line: line, Field: models.FieldYear, Value: cell(ColumnYear), Err: err})
		return models.Record{}, errs, false
	}

	rec := models.Record{
		CountryName: cell(ColumnCountryName),
		CountryCode: cell(ColumnCountryCode),
		Year:        year,
	}

	rec.GDP, err = parseNumber(cell(ColumnGDP))
	if err != nil {
		errs = append(errs, &models.FieldParseError{Line: line, Field: models.FieldGDP, Value: cell(ColumnGDP), Err: err})
	}

	rec.Population, err = parseNumber(cell(ColumnPopulation))
	if err != nil {
		errs = append(errs, &models.FieldParseError{Line: line, Field: models.FieldPopulation, Value: cell(ColumnPopulation), Err: err})
	}

	return rec, errs, true
}

// parseYear reads a decimal year. Leading zeros are decimal, never octal,
// and base prefixes are rejected.
func parseYear(text string) (int, error) {
	v, err := parseNumber(text)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, errNotYear
	}
	return int(v), nil
}

// parseNumber returns NaN alongside any error so a failed field can never
// read as zero.
func parseNumber(text string) (float64, error) {
	v, err := cast.ToFloat64E(text)
	if err != nil {
		return math.NaN(), err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), errNotFinite
	}
	return v, nil
}
