package exporting

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"pcmviz/pkg/bandwidth"
)

func testData() ([]time.Time, []string, map[string]*bandwidth.SocketBandwidth) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	index := []time.Time{base, base.Add(time.Second)}
	data := map[string]*bandwidth.SocketBandwidth{
		"SKT0": {
			DRAMRead:  bandwidth.Series{100, 200},
			DRAMWrite: bandwidth.Series{50, 100},
			PMMRead:   bandwidth.Series{0, 0},
			PMMWrite:  bandwidth.Series{0, 0},
			CXLRead:   bandwidth.Series{0, 0},
			CXLWrite:  bandwidth.Series{0, 0},
		},
	}
	return index, []string{"SKT0"}, data
}

func TestBuildRecords(t *testing.T) {
	index, sockets, data := testData()
	columns, records := BuildRecords(index, sockets, data)

	wantColumns := []string{
		"timestamp",
		"SKT0 DRAM Read", "SKT0 DRAM Write",
		"SKT0 PMM Read", "SKT0 PMM Write",
		"SKT0 CXL Read", "SKT0 CXL Write",
	}
	if !reflect.DeepEqual(columns, wantColumns) {
		t.Errorf("columns = %v; want %v", columns, wantColumns)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d; want 2", len(records))
	}
	if got := records[0]["timestamp"]; got != index[0].UnixMilli() {
		t.Errorf("timestamp = %v; want %v", got, index[0].UnixMilli())
	}
	if got := records[1]["SKT0 DRAM Read"]; got != 200.0 {
		t.Errorf("SKT0 DRAM Read = %v; want 200", got)
	}
}

func TestSaveRecords_CSV(t *testing.T) {
	index, sockets, data := testData()
	columns, records := BuildRecords(index, sockets, data)
	path := filepath.Join(t.TempDir(), "series.csv")

	if err := SaveRecords(path, columns, records); err != nil {
		t.Fatalf("SaveRecords() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d; want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,SKT0 DRAM Read") {
		t.Errorf("header = %q; want timestamp,SKT0 DRAM Read,...", lines[0])
	}
	if !strings.Contains(lines[1], ",100,50,") {
		t.Errorf("first row = %q; want DRAM values 100,50", lines[1])
	}
}

func TestSaveRecords_JSONL(t *testing.T) {
	index, sockets, data := testData()
	columns, records := BuildRecords(index, sockets, data)
	path := filepath.Join(t.TempDir(), "series.jsonl")

	if err := SaveRecords(path, columns, records); err != nil {
		t.Fatalf("SaveRecords() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var count int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("line %d not valid JSON: %v", count+1, err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("record count = %d; want 2", count)
	}
}

func TestSaveRecords_Parquet(t *testing.T) {
	index, sockets, data := testData()
	columns, records := BuildRecords(index, sockets, data)
	path := filepath.Join(t.TempDir(), "series.parquet")

	if err := SaveRecords(path, columns, records); err != nil {
		t.Fatalf("SaveRecords() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("parquet file is empty")
	}
}

func TestSaveRecords_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.xlsx")
	if err := SaveRecords(path, []string{"timestamp"}, nil); err == nil {
		t.Error("SaveRecords() expected error for unsupported extension")
	}
}

func TestGetByPath(t *testing.T) {
	for ext, want := range map[string]string{
		"a.csv":     "csv",
		"a.tsv":     "tsv",
		"a.jsonl":   "jsonl",
		"a.parquet": "parquet",
	} {
		f, ok := GetByPath(ext)
		if !ok || f.Name() != want {
			t.Errorf("GetByPath(%q) = %v, %v; want %s", ext, f, ok, want)
		}
	}
	if _, ok := GetByPath("a.txt"); ok {
		t.Error("GetByPath(a.txt) = true; want false")
	}
}
