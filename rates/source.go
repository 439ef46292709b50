package rates

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SEPARATOR is the default field delimiter of tabular text sources.
const SEPARATOR = ','

var errNoHeader = errors.New("no header row")

// source yields the header and then the records of one tabular resource.
// next returns io.EOF after the last record.
type source interface {
	header() []string
	next() ([]string, error)
	Close() error
}

// openSource picks a reader from the file extension: .xlsx is read as a
// workbook, everything else (optionally .gz/.lz4/.zip compressed) as delimited
// UTF-8 text.
func openSource(filePath string, delimiter rune) (source, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		wb, err := openWorkbook(filePath)
		if err != nil {
			return nil, err
		}
		return wb, nil
	}

	rc, err := openUnpacked(filePath)
	if err != nil {
		return nil, err
	}
	src, err := newCSVSource(rc, delimiter)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return src, nil
}

type csvSource struct {
	rc     io.Closer
	r      *csv.Reader
	fields []string
}

// newCSVSource validates the stream as UTF-8, drops a leading byte order mark
// and reads the header row.
func newCSVSource(rc io.ReadCloser, delimiter rune) (*csvSource, error) {
	if delimiter == 0 {
		delimiter = SEPARATOR
	}
	decoded := transform.NewReader(rc, transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder()))

	r := csv.NewReader(decoded)
	r.Comma = delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err == io.EOF {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return &csvSource{rc: rc, r: r, fields: headers}, nil
}

func (s *csvSource) header() []string { return s.fields }

func (s *csvSource) next() ([]string, error) {
	return s.r.Read()
}

func (s *csvSource) Close() error {
	return s.rc.Close()
}

type workbookSource struct {
	f      *excelize.File
	rows   *excelize.Rows
	fields []string
}

// openWorkbook reads the first sheet of an .xlsx file; its first row is the header.
func openWorkbook(filePath string) (*workbookSource, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, errNoHeader
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	src := &workbookSource{f: f, rows: rows}

	headers, err := src.next()
	if err == io.EOF {
		src.Close()
		return nil, errNoHeader
	}
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}
	src.fields = headers
	return src, nil
}

func (s *workbookSource) header() []string { return s.fields }

func (s *workbookSource) next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns()
}

func (s *workbookSource) Close() error {
	rerr := s.rows.Close()
	if err := s.f.Close(); err != nil {
		return err
	}
	return rerr
}
