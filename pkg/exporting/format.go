// Package exporting writes derived bandwidth series to analysis-friendly
// file formats behind a small format registry.
package exporting

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pcmviz/pkg/bandwidth"
)

// Record is one exported row keyed by column name.
type Record = map[string]interface{}

// Format ties a name and file extensions to a writer implementation.
type Format interface {
	Name() string
	Extensions() []string
	Writer() Writer
}

// Writer writes records to a file. Columns are fixed at Init time.
type Writer interface {
	Init(path string, columns []string) error
	Write(record Record) error
	WriteBatch(records []Record) error
	Flush() error
	Close() error
	Path() string
}

var (
	registry    = make(map[string]Format)
	extRegistry = make(map[string]Format)
)

// Register adds a format to the registry.
func Register(f Format) {
	registry[strings.ToLower(f.Name())] = f
	for _, ext := range f.Extensions() {
		extRegistry[strings.ToLower(ext)] = f
	}
}

// Get returns a format by name.
func Get(name string) (Format, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// GetByPath returns a format based on the file's extension.
func GetByPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extRegistry[ext]
	return f, ok
}

// TimestampColumn is the export column holding Unix milliseconds.
const TimestampColumn = "timestamp"

// BuildRecords flattens the per-socket derived series into rows of timestamp
// plus one labeled column per (socket, tier, direction).
func BuildRecords(index []time.Time, sockets []string, data map[string]*bandwidth.SocketBandwidth) ([]string, []Record) {
	columns := []string{TimestampColumn}
	type column struct {
		name   string
		series bandwidth.Series
	}
	var cols []column

	for _, socket := range sockets {
		bw, ok := data[socket]
		if !ok {
			continue
		}
		for _, c := range []column{
			{socket + " DRAM Read", bw.DRAMRead},
			{socket + " DRAM Write", bw.DRAMWrite},
			{socket + " PMM Read", bw.PMMRead},
			{socket + " PMM Write", bw.PMMWrite},
			{socket + " CXL Read", bw.CXLRead},
			{socket + " CXL Write", bw.CXLWrite},
		} {
			columns = append(columns, c.name)
			cols = append(cols, c)
		}
	}

	records := make([]Record, len(index))
	for i, ts := range index {
		record := make(Record, len(columns))
		record[TimestampColumn] = ts.UnixMilli()
		for _, c := range cols {
			if i < len(c.series) {
				record[c.name] = c.series[i]
			}
		}
		records[i] = record
	}

	return columns, records
}

// SaveRecords writes records to path; the format is chosen by file extension.
func SaveRecords(path string, columns []string, records []Record) error {
	f, ok := GetByPath(path)
	if !ok {
		return fmt.Errorf("unsupported export format for file: %s", path)
	}

	writer := f.Writer()
	if err := writer.Init(path, columns); err != nil {
		return fmt.Errorf("failed to initialize writer: %w", err)
	}

	if err := writer.WriteBatch(records); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}

	if err := writer.Flush(); err != nil {
		writer.Close()
		return fmt.Errorf("failed to flush: %w", err)
	}

	return writer.Close()
}
