package csvexport

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportQuotesEveryField(t *testing.T) {
	out, err := Export([]string{"Name", "Stock"}, []map[string]string{
		{"Name": "Paracetamol 500mg", "Stock": "150"},
	})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Name","Stock"`, lines[0])
	assert.Equal(t, `"Paracetamol 500mg","150"`, lines[1])
}

func TestExportRoundTrip(t *testing.T) {
	headers := []string{"Name", "Supplier", "Notes"}
	rows := []map[string]string{
		{"Name": "Crocin Tablets", "Supplier": "GSK, India", "Notes": `said "urgent"`},
		{"Name": "Aspirin 75mg", "Supplier": "Bayer", "Notes": "line1\nline2"},
		{"Name": "Cetirizine 10mg", "Supplier": "", "Notes": ""},
	}

	out, err := Export(headers, rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)

	assert.Equal(t, headers, records[0])
	for i, row := range rows {
		for j, h := range headers {
			assert.Equal(t, row[h], records[i+1][j])
		}
	}
}

func TestExportMissingColumnsEmitEmptyFields(t *testing.T) {
	out, err := Export([]string{"A", "B"}, []map[string]string{{"A": "x"}})
	require.NoError(t, err)
	assert.Equal(t, "\"A\",\"B\"\n\"x\",\"\"", out)
}

func TestExportNoData(t *testing.T) {
	_, err := Export([]string{"A"}, nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Export([]string{"A"}, []map[string]string{})
	assert.ErrorIs(t, err, ErrNoData)
}
