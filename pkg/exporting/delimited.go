package exporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

func init() {
	Register(&CSVFormat{})
	Register(&TSVFormat{})
}

// CSVFormat handles CSV files.
type CSVFormat struct{}

func (f *CSVFormat) Name() string         { return "csv" }
func (f *CSVFormat) Extensions() []string { return []string{".csv"} }
func (f *CSVFormat) Writer() Writer       { return &DelimitedWriter{delimiter: ','} }

// TSVFormat handles TSV files.
type TSVFormat struct{}

func (f *TSVFormat) Name() string         { return "tsv" }
func (f *TSVFormat) Extensions() []string { return []string{".tsv"} }
func (f *TSVFormat) Writer() Writer       { return &DelimitedWriter{delimiter: '\t'} }

// DelimitedWriter writes CSV/TSV files with a single header row.
type DelimitedWriter struct {
	path      string
	file      *os.File
	writer    *csv.Writer
	columns   []string
	delimiter rune
	mu        sync.Mutex
}

func (w *DelimitedWriter) Init(path string, columns []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.path = path
	w.file = file
	w.columns = append([]string(nil), columns...)
	w.writer = csv.NewWriter(file)
	w.writer.Comma = w.delimiter

	if err := w.writer.Write(w.columns); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

func (w *DelimitedWriter) Write(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	row := make([]string, len(w.columns))
	for i, name := range w.columns {
		row[i] = formatCell(record[name])
	}
	return w.writer.Write(row)
}

func (w *DelimitedWriter) WriteBatch(records []Record) error {
	for i, r := range records {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return nil
}

func formatCell(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (w *DelimitedWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.writer != nil {
		w.writer.Flush()
		return w.writer.Error()
	}
	return nil
}

func (w *DelimitedWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

func (w *DelimitedWriter) Path() string {
	return w.path
}
