package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/exiby/exiby_admin/components/table"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var testColumns = []table.Column{
	{Key: "name", Label: "Name"},
	{Key: "status", Label: "Status", Type: table.StatusColumn},
	{Key: "website", Label: "Website"},
}

var testRows = []table.Row{
	{ID: "1", Values: map[string]interface{}{"name": "Acme, Inc", "status": true, "website": "acme.com"}},
	{ID: "2", Values: map[string]interface{}{"name": "Globex", "status": false}},
}

func Test_WriteCSV__should_write_header_and_records(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, testColumns, testRows, 0)

	assert.NoError(t, err)
	assert.Equal(t, "Name,Status,Website\n\"Acme, Inc\",Active,acme.com\nGlobex,Inactive,\n", buf.String())
}

func Test_WriteCSV__should_keep_literal_dashes_and_quote_formulas(t *testing.T) {
	tests := []struct {
		name    string
		website interface{}
		want    string
	}{
		{name: "missing value", website: nil, want: ""},
		{name: "empty string", website: "", want: ""},
		{name: "literal dash", website: "-", want: "'-"},
		{name: "formula", website: "=HYPERLINK(\"http://x\")", want: "\"'=HYPERLINK(\"\"http://x\"\")\""},
		{name: "at sign", website: "@acme", want: "'@acme"},
		{name: "plain text", website: "acme.com", want: "acme.com"},
		{name: "negative number", website: -5.5, want: "-5.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rows := []table.Row{{ID: "1", Values: map[string]interface{}{"name": "Acme", "status": true, "website": tt.website}}}

			err := WriteCSV(&buf, testColumns, rows, 0)

			assert.NoError(t, err)
			assert.Equal(t, "Name,Status,Website\nAcme,Active,"+tt.want+"\n", buf.String())
		})
	}
}

func Test_WriteCSV__should_return_err_when_over_limit(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, testColumns, testRows, 1)

	assert.Equal(t, ErrTooManyRows, errors.Cause(err))
	assert.Empty(t, buf.String())
}

func Test_FilterSelected(t *testing.T) {
	assert.Equal(t, testRows, FilterSelected(testRows, nil))

	filtered := FilterSelected(testRows, []string{"2", "9"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func Test_Filename(t *testing.T) {
	assert.Equal(t, "organizations-2025-08-20.csv",
		Filename("organizations", time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)))
}
