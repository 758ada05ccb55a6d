// Package models defines the core data structures shared across the service.
// It includes dataset records, chart views and the error taxonomy.
package models

import "math"

// Field names a numeric column of the dataset. The values match the CSV
// header names.
type Field string

const (
	FieldYear       Field = "Year"
	FieldGDP        Field = "GDP"
	FieldPopulation Field = "Population"
)

// Record is one parsed row of the dataset. GDP and Population hold NaN when
// the source text could not be parsed.
type Record struct {
	CountryName string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Year        int     `json:"year"`
	GDP         float64 `json:"gdp"`
	Population  float64 `json:"population"`
}

// Value returns the numeric value of field, false when the field is unknown
// or was not parseable.
func (r Record) Value(field Field) (float64, bool) {
	var v float64
	switch field {
	case FieldYear:
		v = float64(r.Year)
	case FieldGDP:
		v = r.GDP
	case FieldPopulation:
		v = r.Population
	default:
		return math.NaN(), false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, false
	}

	return v, true
}

// Dataset is the full set of records loaded once at startup.
type Dataset struct {
	Source  string   `json:"source"`
	Records []Record `json:"records"`
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Selection is the subset of a dataset for the currently chosen country.
type Selection struct {
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Records     []Record `json:"records"`
}

func (s Selection) Empty() bool {
	return len(s.Records) == 0
}
