package admin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

func TestExportCSVLineCount(t *testing.T) {
	subs := sampleSubmissions()
	out := ExportCSV(subs)

	lines := strings.Split(out, "\n")
	// Header plus one line per submission.
	assert.Len(t, lines, len(subs)+1)
}

func TestExportCSVEveryFieldQuoted(t *testing.T) {
	out := ExportCSV(sampleSubmissions())

	for i, line := range strings.Split(out, "\n") {
		require.NotEmpty(t, line, "line %d", i)
		assert.True(t, strings.HasPrefix(line, `"`), "line %d must start quoted", i)
		assert.True(t, strings.HasSuffix(line, `"`), "line %d must end quoted", i)
		for _, field := range strings.Split(line, `","`) {
			assert.NotContains(t, strings.Trim(field, `"`), `","`)
		}
	}
}

func TestExportCSVEscapesQuotes(t *testing.T) {
	subs := []models.CapabilitySubmission{
		{
			FullName:     `Jane "The Closer" Wanjiku`,
			Email:        "jane@example.com",
			Achievements: "Grew revenue 40%,\nclosed \"Project X\"",
		},
	}

	out := ExportCSV(subs)
	assert.Contains(t, out, `"Jane ""The Closer"" Wanjiku"`)
	assert.Contains(t, out, `closed ""Project X""`)
}

func TestExportCSVEmptyListIsHeaderOnly(t *testing.T) {
	out := ExportCSV(nil)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"Full Name"`)
}
