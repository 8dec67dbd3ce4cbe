package bandwidth

import (
	"math"
	"strconv"
	"strings"
)

// Metric column names written by pcm-memory.x.
const (
	MetricDRAMRead  = "Mem Read (MB/s)"
	MetricDRAMWrite = "Mem Write (MB/s)"
	MetricPMMRead   = "PMM_Read (MB/s)"
	MetricPMMWrite  = "PMM_Write (MB/s)"

	// CXL channel columns are named per channel; direction shows up either as
	// Read/Write or as a device<->host marker.
	CXLPrefix       = "CXL."
	cxlDeviceToHost = "dv->hst"
	cxlHostToDevice = "hst->dv"
	cxlReadMarker   = "Read"
	cxlWriteMarker  = "Write"
)

// Series is a numeric bandwidth series aligned to a table's timestamp index.
type Series []float64

// Sum returns the total over the whole range.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// SocketBandwidth holds the six derived series for one socket. Every series
// has exactly one value per index entry; anomalies degrade to zero, never to
// a missing value.
type SocketBandwidth struct {
	DRAMRead  Series
	DRAMWrite Series
	PMMRead   Series
	PMMWrite  Series
	CXLRead   Series
	CXLWrite  Series
}

// Extract derives the per-socket series for every socket in the table.
// It never fails: absent columns and malformed cells become zeroes.
func Extract(t *Table) map[string]*SocketBandwidth {
	result := make(map[string]*SocketBandwidth)
	for _, socket := range t.Sockets() {
		result[socket] = extractSocket(t, socket)
	}
	return result
}

func extractSocket(t *Table, socket string) *SocketBandwidth {
	bw := &SocketBandwidth{
		DRAMRead:  t.numericColumn(ColumnKey{socket, MetricDRAMRead}),
		DRAMWrite: t.numericColumn(ColumnKey{socket, MetricDRAMWrite}),
		PMMRead:   t.numericColumn(ColumnKey{socket, MetricPMMRead}),
		PMMWrite:  t.numericColumn(ColumnKey{socket, MetricPMMWrite}),
		CXLRead:   make(Series, t.Len()),
		CXLWrite:  make(Series, t.Len()),
	}

	for _, metric := range t.SocketMetrics(socket) {
		if !strings.HasPrefix(metric, CXLPrefix) {
			continue
		}
		col := t.numericColumn(ColumnKey{socket, metric})
		if strings.Contains(metric, cxlReadMarker) || strings.Contains(metric, cxlDeviceToHost) {
			bw.CXLRead.add(col)
		}
		if strings.Contains(metric, cxlWriteMarker) || strings.Contains(metric, cxlHostToDevice) {
			bw.CXLWrite.add(col)
		}
	}

	return bw
}

// numericColumn coerces a column to numbers, or a zero-filled series when the
// column is absent.
func (t *Table) numericColumn(key ColumnKey) Series {
	s := make(Series, t.Len())
	col, ok := t.columns[key]
	if !ok {
		return s
	}
	for i, cell := range col {
		s[i] = coerce(cell)
	}
	return s
}

func (s Series) add(other Series) {
	for i := range s {
		if i < len(other) {
			s[i] += other[i]
		}
	}
}

// coerce parses a counter cell, mapping blanks, junk, NaN and Inf to zero so
// that partial or noisy hardware exports stay usable.
func coerce(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
