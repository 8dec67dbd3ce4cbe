// Package bandwidth normalizes pcm-memory.x bandwidth CSV exports into
// per-socket time series.
package bandwidth

import (
	"sort"
	"strings"
	"time"
)

// SocketPrefix marks the outer header labels that identify a CPU socket group.
const SocketPrefix = "SKT"

// ColumnKey identifies a metric column by its socket group and metric name.
type ColumnKey struct {
	Socket string
	Metric string
}

// Table is a normalized bandwidth table: a chronological timestamp index plus
// the raw text cells of every metric column, keyed by (socket, metric).
type Table struct {
	Index []time.Time

	keys    []ColumnKey
	columns map[ColumnKey][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Index)
}

// Keys returns the column keys in header order.
func (t *Table) Keys() []ColumnKey {
	return t.keys
}

// Column returns the raw cells for a column, aligned to the index.
func (t *Table) Column(key ColumnKey) ([]string, bool) {
	col, ok := t.columns[key]
	return col, ok
}

// Sockets returns the sorted, deduplicated socket identifiers found in the
// header's outer level.
func (t *Table) Sockets() []string {
	seen := make(map[string]bool)
	var sockets []string
	for _, key := range t.keys {
		if !strings.HasPrefix(key.Socket, SocketPrefix) || seen[key.Socket] {
			continue
		}
		seen[key.Socket] = true
		sockets = append(sockets, key.Socket)
	}
	sort.Strings(sockets)
	return sockets
}

// SocketMetrics returns the metric names of one socket's columns, in header order.
func (t *Table) SocketMetrics(socket string) []string {
	var metrics []string
	for _, key := range t.keys {
		if key.Socket == socket {
			metrics = append(metrics, key.Metric)
		}
	}
	return metrics
}
