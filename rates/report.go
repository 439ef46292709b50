package rates

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pivolan/loan_rates/domain/models"
)

// Reporter renders the most common rates and writes them to an output.
type Reporter struct {
	out    io.Writer
	format Format
	logger *slog.Logger
}

// NewReporter creates a reporter. An empty format means FormatText; a nil logger discards.
func NewReporter(out io.Writer, format Format, logger *slog.Logger) *Reporter {
	if format == "" {
		format = FormatText
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{out: out, format: format, logger: logger}
}

// Report ranks rates, writes the rendered report and returns it.
// Callers handle an empty rate list before calling.
func (r *Reporter) Report(rates models.RateList, topN int) (string, error) {
	counts := CountRates(rates)
	entries := TopRates(counts, topN)

	r.logger.Debug("Rates ranked",
		slog.Int("total", int(counts.Total())),
		slog.Int("distinct", counts.Len()),
		slog.Int("top_n", topN),
		slog.String("format", string(r.format)))

	var text string
	switch r.format {
	case FormatText:
		text = GenerateRatesText(entries, topN)
	case FormatTable:
		text = GenerateRatesTable(entries, topN)
	case FormatMarkdown:
		text = GenerateRatesMarkdown(entries, topN)
	case FormatCSV:
		text = GenerateRatesCSV(entries)
	default:
		return "", fmt.Errorf("unknown report format %q", r.format)
	}

	if _, err := io.WriteString(r.out, text); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return text, nil
}
