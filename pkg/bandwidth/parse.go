package bandwidth

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Timestamp layouts tried against the concatenated Date+Time fields.
// pcm-memory.x writes dates either ISO or US style depending on locale.
var timeLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04",
}

// ParseFile reads and normalizes a two-row-header bandwidth CSV.
func ParseFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse normalizes a two-row-header bandwidth CSV from r.
//
// The first header row carries the socket group of each column, the second the
// metric name. The first two columns must be the Date and Time fields; they are
// concatenated, parsed, and become the row index. Rows with an unparsable
// timestamp or no metric values at all are dropped. The surviving index is
// sorted chronologically.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if len(rows) < 2 {
		return nil, ErrHeaderFormat
	}

	outer, inner := rows[0], rows[1]
	if len(inner) < 2 || !strings.Contains(inner[0], "Date") || !strings.Contains(inner[1], "Time") {
		return nil, ErrHeaderFormat
	}

	if len(rows) == 2 {
		return nil, ErrEmptyInput
	}

	// Metric columns start after the Date/Time pair. Columns past the end of
	// either header row have no complete key and are ignored.
	var keys []ColumnKey
	for i := 2; i < len(inner) && i < len(outer); i++ {
		keys = append(keys, ColumnKey{
			Socket: strings.TrimSpace(outer[i]),
			Metric: strings.TrimSpace(inner[i]),
		})
	}

	type indexedRow struct {
		ts    time.Time
		cells []string
	}
	var kept []indexedRow

	for _, row := range rows[2:] {
		if len(row) < 2 {
			continue
		}
		ts, ok := parseTimestamp(row[0], row[1])
		if !ok {
			continue
		}

		cells := make([]string, len(keys))
		empty := true
		k := 0
		for i := 2; i < len(inner) && i < len(outer); i++ {
			if i < len(row) {
				cells[k] = row[i]
				if strings.TrimSpace(row[i]) != "" {
					empty = false
				}
			}
			k++
		}
		if empty {
			continue
		}
		kept = append(kept, indexedRow{ts: ts, cells: cells})
	}

	if len(kept) == 0 {
		return nil, ErrNoTimestamps
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].ts.Before(kept[j].ts)
	})

	table := &Table{
		Index:   make([]time.Time, len(kept)),
		keys:    keys,
		columns: make(map[ColumnKey][]string, len(keys)),
	}
	for _, key := range keys {
		table.columns[key] = make([]string, len(kept))
	}
	for ri, row := range kept {
		table.Index[ri] = row.ts
		for ki, key := range keys {
			table.columns[key][ri] = row.cells[ki]
		}
	}

	if len(table.Sockets()) == 0 {
		return nil, ErrNoSockets
	}

	return table, nil
}

func parseTimestamp(date, clock string) (time.Time, bool) {
	s := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
