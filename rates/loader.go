package rates

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pivolan/loan_rates/domain/models"
)

// MissingColumnError describes a header without any known interest rate column.
type MissingColumnError struct {
	Header      []string
	Suggestions []string
}

func (e *MissingColumnError) Error() string {
	msg := fmt.Sprintf("none of %s in header [%s]",
		strings.Join(interestColumnNames, ", "), strings.Join(e.Header, ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Loader reads a tabular source and collects the normalized interest rates of every row.
type Loader struct {
	delimiter rune
	logger    *slog.Logger
}

// NewLoader creates a loader. A zero delimiter means SEPARATOR; a nil logger discards.
func NewLoader(logger *slog.Logger, delimiter rune) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if delimiter == 0 {
		delimiter = SEPARATOR
	}
	return &Loader{delimiter: delimiter, logger: logger}
}

// Load reads filePath with the default delimiter and no logging.
func Load(ctx context.Context, filePath string) (models.RateList, error) {
	return NewLoader(nil, SEPARATOR).Load(ctx, filePath)
}

// Load returns the rates of all rows whose interest rate cell normalizes, in row order.
// Rows that do not normalize are skipped. Errors are *models.OpError of kind
// not_found, read_error or column_not_found; no partial list is returned with them.
func (l *Loader) Load(ctx context.Context, filePath string) (models.RateList, error) {
	const op = "load"

	if _, err := os.Stat(filePath); err != nil {
		return nil, &models.OpError{Op: op, Kind: models.KindNotFound, Path: filePath, Err: err}
	}

	src, err := openSource(filePath, l.delimiter)
	if err != nil {
		return nil, &models.OpError{Op: op, Kind: models.KindReadError, Path: filePath, Err: err}
	}
	defer src.Close()

	header := src.header()
	column, ok := ResolveInterestColumn(header)
	if !ok {
		return nil, &models.OpError{Op: op, Kind: models.KindColumnNotFound, Path: filePath, Err: &MissingColumnError{
			Header:      header,
			Suggestions: SuggestInterestColumn(header),
		}}
	}
	idx := columnIndex(header, column)

	l.logger.Debug("Interest rate column resolved",
		slog.String("path", filePath),
		slog.String("column", column),
		slog.Int("index", idx))

	rates := models.RateList{}
	rowsRead, skipped := 0, 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, &models.OpError{Op: op, Kind: models.KindReadError, Path: filePath, Err: err}
		}
		row, err := src.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &models.OpError{Op: op, Kind: models.KindReadError, Path: filePath, Err: err}
		}
		if len(row) == 0 {
			continue
		}
		rowsRead++

		var cell *string
		if idx < len(row) {
			cell = &row[idx]
		}
		rate, ok := NormalizeCell(cell)
		if !ok {
			skipped++
			continue
		}
		rates = append(rates, rate)
	}

	l.logger.Info("Interest rates loaded",
		slog.String("path", filePath),
		slog.String("source", innerName(filePath)),
		slog.Int("rows", rowsRead),
		slog.Int("rates", len(rates)),
		slog.Int("skipped", skipped))

	return rates, nil
}
