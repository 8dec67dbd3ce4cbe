package graphing

import (
	"reflect"
	"testing"

	"pcmviz/pkg/bandwidth"
)

func socketData(dramR, dramW, pmmR, pmmW, cxlR, cxlW bandwidth.Series) *bandwidth.SocketBandwidth {
	return &bandwidth.SocketBandwidth{
		DRAMRead:  dramR,
		DRAMWrite: dramW,
		PMMRead:   pmmR,
		PMMWrite:  pmmW,
		CXLRead:   cxlR,
		CXLWrite:  cxlW,
	}
}

func zeroes(n int) bandwidth.Series {
	return make(bandwidth.Series, n)
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("rw"); err != nil || m != ModeReadWrite {
		t.Errorf("ParseMode(rw) = %v, %v; want rw, nil", m, err)
	}
	if m, err := ParseMode("total"); err != nil || m != ModeTotal {
		t.Errorf("ParseMode(total) = %v, %v; want total, nil", m, err)
	}
	if _, err := ParseMode("stacked"); err == nil {
		t.Error("ParseMode(stacked) expected error")
	}
}

func TestBuildLines_TotalMode_DRAMOnly(t *testing.T) {
	data := map[string]*bandwidth.SocketBandwidth{
		"SKT0": socketData(
			bandwidth.Series{100, 200}, bandwidth.Series{50, 100},
			zeroes(2), zeroes(2), zeroes(2), zeroes(2),
		),
	}

	lines := BuildLines(data, []string{"SKT0"}, ModeTotal)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d; want 1", len(lines))
	}
	if lines[0].Label() != "SKT0 DRAM Total" {
		t.Errorf("label = %q; want %q", lines[0].Label(), "SKT0 DRAM Total")
	}
	if !reflect.DeepEqual(lines[0].Values, bandwidth.Series{150, 300}) {
		t.Errorf("values = %v; want [150 300]", lines[0].Values)
	}
}

func TestBuildLines_RWMode_DRAMOnly(t *testing.T) {
	data := map[string]*bandwidth.SocketBandwidth{
		"SKT0": socketData(
			bandwidth.Series{100}, bandwidth.Series{50},
			zeroes(1), zeroes(1), zeroes(1), zeroes(1),
		),
	}

	lines := BuildLines(data, []string{"SKT0"}, ModeReadWrite)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d; want 2", len(lines))
	}
	if lines[0].Label() != "SKT0 DRAM Read" || lines[1].Label() != "SKT0 DRAM Write" {
		t.Errorf("labels = %q, %q; want SKT0 DRAM Read, SKT0 DRAM Write",
			lines[0].Label(), lines[1].Label())
	}
}

func TestBuildLines_PMMGating(t *testing.T) {
	withPMM := map[string]*bandwidth.SocketBandwidth{
		"SKT0": socketData(
			bandwidth.Series{100}, bandwidth.Series{50},
			bandwidth.Series{10}, bandwidth.Series{5},
			zeroes(1), zeroes(1),
		),
	}

	count := func(lines []Line, tier Tier) int {
		n := 0
		for _, l := range lines {
			if l.Tier == tier {
				n++
			}
		}
		return n
	}

	total := BuildLines(withPMM, []string{"SKT0"}, ModeTotal)
	if got := count(total, TierPMM); got != 1 {
		t.Errorf("PMM lines in total mode = %d; want 1", got)
	}

	rw := BuildLines(withPMM, []string{"SKT0"}, ModeReadWrite)
	if got := count(rw, TierPMM); got != 2 {
		t.Errorf("PMM lines in rw mode = %d; want 2", got)
	}

	idlePMM := map[string]*bandwidth.SocketBandwidth{
		"SKT0": socketData(
			bandwidth.Series{100}, bandwidth.Series{50},
			zeroes(1), zeroes(1), zeroes(1), zeroes(1),
		),
	}
	for _, mode := range []Mode{ModeTotal, ModeReadWrite} {
		if got := count(BuildLines(idlePMM, []string{"SKT0"}, mode), TierPMM); got != 0 {
			t.Errorf("PMM lines with idle PMM in %s mode = %d; want 0", mode, got)
		}
	}
}

func TestBuildLines_CXLGating(t *testing.T) {
	data := map[string]*bandwidth.SocketBandwidth{
		"SKT0": socketData(
			bandwidth.Series{100}, bandwidth.Series{50},
			zeroes(1), zeroes(1),
			bandwidth.Series{7}, bandwidth.Series{3},
		),
	}

	lines := BuildLines(data, []string{"SKT0"}, ModeTotal)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d; want 2", len(lines))
	}
	if lines[1].Label() != "SKT0 CXL Total" {
		t.Errorf("label = %q; want %q", lines[1].Label(), "SKT0 CXL Total")
	}
	if !reflect.DeepEqual(lines[1].Values, bandwidth.Series{10}) {
		t.Errorf("CXL total = %v; want [10]", lines[1].Values)
	}
}

func TestBuildLines_SocketOrder(t *testing.T) {
	data := map[string]*bandwidth.SocketBandwidth{
		"SKT0": socketData(bandwidth.Series{1}, bandwidth.Series{1}, zeroes(1), zeroes(1), zeroes(1), zeroes(1)),
		"SKT1": socketData(bandwidth.Series{2}, bandwidth.Series{2}, zeroes(1), zeroes(1), zeroes(1), zeroes(1)),
	}

	lines := BuildLines(data, []string{"SKT0", "SKT1"}, ModeTotal)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d; want 2", len(lines))
	}
	if lines[0].Socket != "SKT0" || lines[1].Socket != "SKT1" {
		t.Errorf("socket order = %s, %s; want SKT0, SKT1", lines[0].Socket, lines[1].Socket)
	}
}
