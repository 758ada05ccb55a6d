// Package selector derives per-country working sets from a dataset.
package selector

import "github.com/gdpscope/core/internal/models"

// Select returns every record of ds whose country name equals country, in
// dataset order. The country code comes from the first match. With no match
// the selection is empty and an *models.EmptySelectionError is returned.
func Select(ds *models.Dataset, country string) (models.Selection, error) {
	sel := models.Selection{Country: country, Records: []models.Record{}}
	if ds == nil {
		return sel, &models.EmptySelectionError{Country: country}
	}

	for _, rec := range ds.Records {
		if rec.CountryName == country {
			sel.Records = append(sel.Records, rec)
		}
	}

	if len(sel.Records) == 0 {
		return sel, &models.EmptySelectionError{Country: country}
	}

	sel.CountryCode = sel.Records[0].CountryCode
	return sel, nil
}

// ListDistinctCountries returns the country names of ds in order of first
// appearance.
func ListDistinctCountries(ds *models.Dataset) []string {
	countries := []string{}
	if ds == nil {
		return countries
	}

	seen := make(map[string]bool)
	for _, rec := range ds.Records {
		if seen[rec.CountryName] {
			continue
		}
		seen[rec.CountryName] = true
		countries = append(countries, rec.CountryName)
	}

	return countries
}

// DefaultCountry picks preferred when it is listed, else the first country.
func DefaultCountry(countries []string, preferred string) string {
	for _, c := range countries {
		if c == preferred {
			return c
		}
	}
	if len(countries) > 0 {
		return countries[0]
	}
	return ""
}
