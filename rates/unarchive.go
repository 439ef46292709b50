package rates

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// archiveExt returns the compression extension of path, or "" for plain files.
func archiveExt(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".zip", ".gz", ".lz4":
		return ext
	}
	return ""
}

// innerName strips the compression extension so "loans.csv.gz" reports "loans.csv".
func innerName(filePath string) string {
	if ext := archiveExt(filePath); ext != "" {
		return strings.TrimSuffix(filePath, filepath.Ext(filePath))
	}
	return filePath
}

// openUnpacked opens filePath and, for archives, decompresses it on the fly.
// The archive on disk is left untouched. Closing the returned reader releases
// every handle that was opened.
func openUnpacked(filePath string) (io.ReadCloser, error) {
	switch archiveExt(filePath) {
	case ".zip":
		return openZipArchive(filePath)
	case ".gz":
		return openGzipArchive(filePath)
	case ".lz4":
		return openLZ4Archive(filePath)
	}
	return os.Open(filePath)
}

// multiCloser closes the decoder first and the underlying file last.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openZipArchive(filePath string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}

	// Largest file in the archive holds the data.
	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, fmt.Errorf("zip archive %s contains no files", filepath.Base(filePath))
	}

	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("open %s in zip archive: %w", largestFile.Name, err)
	}
	return &multiCloser{Reader: rc, closers: []io.Closer{rc, r}}, nil
}

func openGzipArchive(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("open gzip archive: %w", err)
	}
	return &multiCloser{Reader: gr, closers: []io.Closer{gr, file}}, nil
}

func openLZ4Archive(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	return &multiCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
}
