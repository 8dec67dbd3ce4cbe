package exporting

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/parquet-go/parquet-go"
)

func init() {
	Register(&ParquetFormat{})
}

// ParquetFormat handles Parquet files.
type ParquetFormat struct{}

func (f *ParquetFormat) Name() string         { return "parquet" }
func (f *ParquetFormat) Extensions() []string { return []string{".parquet"} }
func (f *ParquetFormat) Writer() Writer       { return &ParquetWriter{} }

// ParquetWriter writes Parquet files. The schema is fixed at Init time: an
// int64 timestamp column plus doubles for every series column.
type ParquetWriter struct {
	path    string
	file    *os.File
	writer  *parquet.Writer
	schema  *parquet.Schema
	columns []string
	mu      sync.Mutex
}

func (w *ParquetWriter) Init(path string, columns []string) error {
	w.path = path

	// Parquet group fields are ordered by name; keep a matching column list
	// so row value indices line up with the schema.
	w.columns = append([]string(nil), columns...)
	sort.Strings(w.columns)

	group := make(parquet.Group, len(w.columns))
	for _, name := range w.columns {
		if name == TimestampColumn {
			group[name] = parquet.Optional(parquet.Int(64))
		} else {
			group[name] = parquet.Optional(parquet.Leaf(parquet.DoubleType))
		}
	}
	w.schema = parquet.NewSchema("bandwidth", group)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.file = file
	w.writer = parquet.NewWriter(file, w.schema,
		parquet.Compression(&parquet.Snappy),
	)
	return nil
}

func (w *ParquetWriter) Write(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	row := make(parquet.Row, len(w.columns))
	for i, name := range w.columns {
		val, ok := record[name]
		if !ok || val == nil {
			row[i] = parquet.NullValue()
			continue
		}
		row[i] = goToParquetValue(val, i)
	}

	if _, err := w.writer.WriteRows([]parquet.Row{row}); err != nil {
		return fmt.Errorf("failed to write parquet row: %w", err)
	}
	return nil
}

func goToParquetValue(val interface{}, columnIndex int) parquet.Value {
	switch v := val.(type) {
	case int64:
		return parquet.Int64Value(v).Level(0, 1, columnIndex)
	case float64:
		return parquet.DoubleValue(v).Level(0, 1, columnIndex)
	case string:
		return parquet.ByteArrayValue([]byte(v)).Level(0, 1, columnIndex)
	default:
		return parquet.ByteArrayValue([]byte(fmt.Sprintf("%v", v))).Level(0, 1, columnIndex)
	}
}

func (w *ParquetWriter) WriteBatch(records []Record) error {
	for i, r := range records {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return nil
}

func (w *ParquetWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.writer != nil {
		return w.writer.Flush()
	}
	return nil
}

func (w *ParquetWriter) Close() error {
	if w.writer != nil {
		if err := w.writer.Close(); err != nil {
			return err
		}
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

func (w *ParquetWriter) Path() string {
	return w.path
}
