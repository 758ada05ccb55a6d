// Package parser provides utilities for parsing and transforming input data.
// It turns the country CSV into dataset records and reports the fields it
// could not convert.
package parser

import (
	"errors"
	"io/fs"
	"math"
	"strings"
	"testing"

	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdpscope/core/internal/models"
)

const sampleCSV = `Country Name,Country Code,Year,GDP,Population
Albania,ALB,1960,100,1608800
Albania,ALB,1961,200,1659800
Algeria,DZA,1960,2723593384,11124888
`

func TestParseDataset_Valid(t *testing.T) {
	ds, report, err := ParseDataset(strings.NewReader(sampleCSV), "GDP_pop.csv")

	require.NoError(t, err)
	assert.Equal(t, "GDP_pop.csv", ds.Source)
	require.Len(t, ds.Records, 3)
	assert.Equal(t, models.Record{CountryName: "Albania", CountryCode: "ALB", Year: 1960, GDP: 100, Population: 1608800}, ds.Records[0])
	assert.Equal(t, "Algeria", ds.Records[2].CountryName)
	assert.Equal(t, 2723593384.0, ds.Records[2].GDP)

	assert.Equal(t, 3, report.Rows)
	assert.Zero(t, report.Affected())
	assert.Empty(t, report.Errors)
}

func TestParseDataset_ColumnOrder(t *testing.T) {
	input := "\ufeffYear,GDP,Population,Country Code,Country Name,Extra\n1970,5.5,10,ALB,Albania,x\n"

	ds, _, err := ParseDataset(strings.NewReader(input), "reordered.csv")

	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "Albania", ds.Records[0].CountryName)
	assert.Equal(t, 1970, ds.Records[0].Year)
	assert.Equal(t, 5.5, ds.Records[0].GDP)
}

func TestParseDataset_FieldErrors(t *testing.T) {
	input := `Country Name,Country Code,Year,GDP,Population
Albania,ALB,1960,,1608800
Albania,ALB,19x1,200,1659800
Albania,ALB,1962,NaN,abc
Albania,ALB,1963,300,1700000
`

	ds, report, err := ParseDataset(strings.NewReader(input), "bad.csv")
	require.NoError(t, err)

	t.Run("drops rows with a bad year", func(t *testing.T) {
		require.Len(t, ds.Records, 3)
		assert.Equal(t, []int{1960, 1962, 1963}, []int{ds.Records[0].Year, ds.Records[1].Year, ds.Records[2].Year})
		assert.Equal(t, 1, report.DroppedRows)
	})

	t.Run("keeps bad numeric fields as NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(ds.Records[0].GDP))
		assert.Equal(t, 1608800.0, ds.Records[0].Population)
		assert.True(t, math.IsNaN(ds.Records[1].GDP))
		assert.True(t, math.IsNaN(ds.Records[1].Population))
		assert.Equal(t, 2, report.SkippedRows)
	})

	t.Run("reports every failed field", func(t *testing.T) {
		assert.Equal(t, 4, report.Rows)
		assert.Equal(t, 3, report.Affected())
		require.Len(t, report.Errors, 4)

		assert.Equal(t, 2, report.Errors[0].Line)
		assert.Equal(t, models.FieldGDP, report.Errors[0].Field)

		assert.Equal(t, 3, report.Errors[1].Line)
		assert.Equal(t, models.FieldYear, report.Errors[1].Field)
		assert.Equal(t, "19x1", report.Errors[1].Value)

		assert.Equal(t, models.FieldGDP, report.Errors[2].Field)
		assert.ErrorIs(t, report.Errors[2], errNotFinite)
		assert.Equal(t, models.FieldPopulation, report.Errors[3].Field)
	})
}

func TestParseDataset_YearText(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		want  int
		valid bool
	}{
		{"plain", "1960", 1960, true},
		{"leading zeros stay decimal", "0100", 100, true},
		{"leading zero before a real year", "01960", 1960, true},
		{"hex prefix", "0x7B2", 0, false},
		{"octal prefix", "0o3654", 0, false},
		{"fractional", "1960.5", 0, false},
		{"infinite", "Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "Country Name,Country Code,Year,GDP,Population\nAlbania,ALB," + tt.year + ",1,2\n"

			ds, report, err := ParseDataset(strings.NewReader(input), "years.csv")
			require.NoError(t, err)

			if !tt.valid {
				assert.Empty(t, ds.Records)
				assert.Equal(t, 1, report.DroppedRows)
				require.Len(t, report.Errors, 1)
				assert.Equal(t, models.FieldYear, report.Errors[0].Field)
				assert.Equal(t, tt.year, report.Errors[0].Value)
				return
			}

			require.Len(t, ds.Records, 1)
			assert.Equal(t, tt.want, ds.Records[0].Year)
			assert.Empty(t, report.Errors)
		})
	}
}

func TestParseDataset_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty input", "", "empty dataset"},
		{"missing columns", "Country Name,Year\nAlbania,1960\n", "missing required columns: Country Code, GDP, Population"},
		{"malformed quoting", "Country Name,Country Code,Year,GDP,Population\n\"Albania,ALB,1960,1,1\n", "failed to read row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDataset(strings.NewReader(tt.input), "broken.csv")
			require.Error(t, err)

			var loadErr *models.DataLoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "broken.csv", loadErr.Source)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadDataset(t *testing.T) {
	rootFS := memfs.New()
	require.NoError(t, rootFS.MkdirAll("data", 0o755))
	require.NoError(t, rootFS.WriteFile("data/GDP_pop.csv", []byte(sampleCSV), 0o644))

	t.Run("reads file from fs", func(t *testing.T) {
		ds, report, err := LoadDataset(rootFS, "data/GDP_pop.csv")
		require.NoError(t, err)
		assert.Len(t, ds.Records, 3)
		assert.Equal(t, 3, report.Rows)
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		_, _, err := LoadDataset(rootFS, "data/missing.csv")

		var loadErr *models.DataLoadError
		require.True(t, errors.As(err, &loadErr))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}
