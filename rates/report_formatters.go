package rates

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pivolan/loan_rates/domain/models"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// Formats lists every supported report format.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatMarkdown, FormatCSV}
}

func reportTitle(topN int) string {
	return fmt.Sprintf("Top %d Most Common Loan Interest Rates:", topN)
}

// GenerateRatesText renders the plain report: a title line and one line per rate.
func GenerateRatesText(entries []models.RateCount, topN int) string {
	buf := &strings.Builder{}
	buf.WriteString(reportTitle(topN))
	buf.WriteString("\n")
	for _, e := range entries {
		buf.WriteString(fmt.Sprintf("%.2f%%: %d loans (%.2f%%)\n", e.Rate, e.Count, e.Percent))
	}
	return buf.String()
}

func newRatesTable(entries []models.RateCount) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Rate", "Loans", "Share"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.2f%%", e.Rate),
			e.Count,
			fmt.Sprintf("%.2f%%", e.Percent),
		})
	}
	t.SetStyle(table.StyleDefault)
	return t
}

// GenerateRatesTable renders the report as a boxed ASCII table.
func GenerateRatesTable(entries []models.RateCount, topN int) string {
	return reportTitle(topN) + "\n" + newRatesTable(entries).Render() + "\n"
}

// GenerateRatesMarkdown renders the report as a Markdown table.
func GenerateRatesMarkdown(entries []models.RateCount, topN int) string {
	return reportTitle(topN) + "\n\n" + newRatesTable(entries).RenderMarkdown() + "\n"
}

// GenerateRatesCSV renders the ranked rows only, header included.
func GenerateRatesCSV(entries []models.RateCount) string {
	return newRatesTable(entries).RenderCSV() + "\n"
}
