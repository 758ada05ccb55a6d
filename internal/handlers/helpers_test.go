// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdpscope/core/internal/app"
	"github.com/gdpscope/core/internal/chart"
	"github.com/gdpscope/core/internal/parser"
)

const testCSV = `Country Name,Country Code,Year,GDP,Population
Albania,ALB,1960,100,1608800
Albania,ALB,1961,200,1659800
Algeria,DZA,1960,2723593384,11124888
`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	ds, _, err := parser.ParseDataset(strings.NewReader(testCSV), "GDP_pop.csv")
	require.NoError(t, err)

	a, err := app.New(ds, chart.MainDefaults(), chart.TooltipDefaults(), "Albania")
	require.NoError(t, err)

	return New(a)
}
