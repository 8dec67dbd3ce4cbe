// Package graphing renders per-socket bandwidth series as line charts.
package graphing

import (
	"fmt"

	"pcmviz/pkg/bandwidth"
)

// Mode selects what the chart shows.
type Mode string

const (
	// ModeReadWrite plots read and write bandwidth as separate lines.
	ModeReadWrite Mode = "rw"
	// ModeTotal plots summed read+write bandwidth per tier.
	ModeTotal Mode = "total"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReadWrite, ModeTotal:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode %q (want rw or total)", s)
}

// Tier is a memory technology class with its own read/write counters.
type Tier string

const (
	TierDRAM Tier = "DRAM"
	TierPMM  Tier = "PMM"
	TierCXL  Tier = "CXL"
)

// Kind is the direction a line represents.
type Kind string

const (
	KindRead  Kind = "Read"
	KindWrite Kind = "Write"
	KindTotal Kind = "Total"
)

// Line is one plotted line, aligned to the table's timestamp index.
type Line struct {
	Socket string
	Tier   Tier
	Kind   Kind
	Values bandwidth.Series
}

// Label returns the legend entry for the line.
func (l Line) Label() string {
	return fmt.Sprintf("%s %s %s", l.Socket, l.Tier, l.Kind)
}

// BuildLines assembles the lines to plot, in socket order. DRAM is always
// shown; PMM and CXL only when that tier carried any bandwidth at all over
// the range, so idle tiers do not clutter the legend.
func BuildLines(data map[string]*bandwidth.SocketBandwidth, sockets []string, mode Mode) []Line {
	var lines []Line
	for _, socket := range sockets {
		bw, ok := data[socket]
		if !ok {
			continue
		}

		hasPMM := bw.PMMRead.Sum()+bw.PMMWrite.Sum() > 0
		hasCXL := bw.CXLRead.Sum()+bw.CXLWrite.Sum() > 0

		if mode == ModeTotal {
			lines = append(lines, Line{socket, TierDRAM, KindTotal, addSeries(bw.DRAMRead, bw.DRAMWrite)})
			if hasPMM {
				lines = append(lines, Line{socket, TierPMM, KindTotal, addSeries(bw.PMMRead, bw.PMMWrite)})
			}
			if hasCXL {
				lines = append(lines, Line{socket, TierCXL, KindTotal, addSeries(bw.CXLRead, bw.CXLWrite)})
			}
			continue
		}

		lines = append(lines, Line{socket, TierDRAM, KindRead, bw.DRAMRead})
		lines = append(lines, Line{socket, TierDRAM, KindWrite, bw.DRAMWrite})
		if hasPMM {
			lines = append(lines, Line{socket, TierPMM, KindRead, bw.PMMRead})
			lines = append(lines, Line{socket, TierPMM, KindWrite, bw.PMMWrite})
		}
		if hasCXL {
			lines = append(lines, Line{socket, TierCXL, KindRead, bw.CXLRead})
			lines = append(lines, Line{socket, TierCXL, KindWrite, bw.CXLWrite})
		}
	}
	return lines
}

func addSeries(a, b bandwidth.Series) bandwidth.Series {
	sum := make(bandwidth.Series, len(a))
	for i := range a {
		sum[i] = a[i]
		if i < len(b) {
			sum[i] += b[i]
		}
	}
	return sum
}
