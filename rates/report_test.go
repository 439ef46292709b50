package rates

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pivolan/loan_rates/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioRates = models.RateList{13.49, 13.49, 5.00, 13.49, 5.00, 22.10}

func TestReporterText(t *testing.T) {
	var out bytes.Buffer
	text, err := NewReporter(&out, FormatText, nil).Report(scenarioRates, 2)
	require.NoError(t, err)

	want := "Top 2 Most Common Loan Interest Rates:\n" +
		"13.49%: 3 loans (50.00%)\n" +
		"5.00%: 2 loans (33.33%)\n"
	assert.Equal(t, want, text)
	assert.Equal(t, want, out.String())
}

func TestReporterDefaultTopN(t *testing.T) {
	var out bytes.Buffer
	_, err := NewReporter(&out, "", nil).Report(scenarioRates, DefaultTopN)
	require.NoError(t, err)

	assert.Equal(t, "Top 3 Most Common Loan Interest Rates:\n"+
		"13.49%: 3 loans (50.00%)\n"+
		"5.00%: 2 loans (33.33%)\n"+
		"22.10%: 1 loans (16.67%)\n", out.String())
}

func TestReporterTopNBeyondDistinct(t *testing.T) {
	var out bytes.Buffer
	text, err := NewReporter(&out, FormatText, nil).Report(models.RateList{5.49, 5.49}, 5)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, []string{
		"Top 5 Most Common Loan Interest Rates:",
		"5.49%: 2 loans (100.00%)",
	}, lines)
}

func TestReporterTable(t *testing.T) {
	var out bytes.Buffer
	text, err := NewReporter(&out, FormatTable, nil).Report(scenarioRates, 2)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Top 2 Most Common Loan Interest Rates:\n+"))
	for _, want := range []string{"RATE", "LOANS", "SHARE", "13.49%", "50.00%", "5.00%", "33.33%"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "22.10%")
}

func TestReporterMarkdown(t *testing.T) {
	var out bytes.Buffer
	text, err := NewReporter(&out, FormatMarkdown, nil).Report(scenarioRates, 2)
	require.NoError(t, err)

	assert.Contains(t, text, "| Rate | Loans | Share |")
	assert.Contains(t, text, "| 13.49% | 3 | 50.00% |")
	assert.Contains(t, text, "| 5.00% | 2 | 33.33% |")
}

func TestReporterCSV(t *testing.T) {
	var out bytes.Buffer
	text, err := NewReporter(&out, FormatCSV, nil).Report(scenarioRates, 2)
	require.NoError(t, err)

	assert.Equal(t, "Rate,Loans,Share\n13.49%,3,50.00%\n5.00%,2,33.33%\n", text)
}

func TestReporterUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	_, err := NewReporter(&out, Format("xml"), nil).Report(scenarioRates, 2)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReporterWriteError(t *testing.T) {
	_, err := NewReporter(failingWriter{}, FormatText, nil).Report(scenarioRates, 2)
	assert.ErrorContains(t, err, "disk full")
}
