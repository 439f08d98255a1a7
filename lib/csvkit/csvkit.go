// Package csvkit reads and writes header-keyed CSV files. Every row
// travels as a map keyed by column name so callers never depend on
// column order, and appends survive process crashes because each row
// is flushed as it is written.
package csvkit

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read loads an entire CSV file, returning its header and one map per
// record. Records shorter than the header are padded with empty strings.
func Read(path string) ([]string, []map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		row := make(map[string]string, len(header))
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			} else {
				row[field] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

type Writer struct {
	file   *os.File
	fields []string
	csv    *csv.Writer
}

// OpenWriter opens path for appending rows with the given field set.
// The header is written only when the file is new, empty, or carries a
// header missing any of the fields; in the last case the file is
// rewritten from scratch since its rows cannot be trusted.
func OpenWriter(path string, fields []string) (*Writer, error) {
	needHeader, truncate, err := headerState(path, fields)
	if err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, err
	}

	w := &Writer{file: f, fields: fields, csv: csv.NewWriter(f)}
	if needHeader {
		if err := w.csv.Write(fields); err != nil {
			f.Close()
			return nil, err
		}
		w.csv.Flush()
		if err := w.csv.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

func headerState(path string, fields []string) (needHeader, truncate bool, err error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return true, false, nil
	}
	if err != nil {
		return false, false, err
	}
	defer f.Close()

	firstLine, err := bufio.NewReader(f).ReadString('\n')
	if err == io.EOF && firstLine == "" {
		return true, false, nil
	}
	if err != nil && err != io.EOF {
		return false, false, err
	}

	present := map[string]bool{}
	for _, col := range strings.Split(strings.TrimRight(firstLine, "\r\n"), ",") {
		present[strings.Trim(col, `"`)] = true
	}
	for _, field := range fields {
		if !present[field] {
			// existing header is unusable, start the file over
			return true, true, nil
		}
	}
	return false, false, nil
}

// WriteRow appends one record and flushes it to disk immediately.
// Keys absent from the field set are ignored.
func (w *Writer) WriteRow(row map[string]string) error {
	record := make([]string, len(w.fields))
	for i, field := range w.fields {
		record[i] = row[field]
	}
	if err := w.csv.Write(record); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.file.Sync()
}

func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// WriteAll writes a whole file in one shot, replacing anything at path.
func WriteAll(path string, fields []string, rows []map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		record := make([]string, len(fields))
		for i, field := range fields {
			record[i] = row[field]
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
