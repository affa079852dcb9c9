// Package eop holds Earth-Orientation-Parameter and space-weather tables
// indexed by integer Modified Julian Date, interpolated on lookup. Tables
// are built once (typically at process start from rows parsed out of an
// IERS Bulletin-A or CelesTrak file; this module has no parser for those
// files) and are immutable afterward: Lookup takes no
// lock and returns a value record, so concurrent per-satellite propagation
// goroutines can share one *Table safely (spec §5).
package eop

import (
	"sort"

	"github.com/hpop/orbit/internal/hpoplog"
)

// Row is one day's Earth Orientation Parameters.
type Row struct {
	MJD  int
	DUT1 float64 // UT1 - UTC, seconds
	LOD  float64 // length of day excess, seconds
	XP   float64 // polar motion x, arcseconds
	YP   float64 // polar motion y, arcseconds
	DPsi float64 // nutation correction in longitude, arcseconds
	DEps float64 // nutation correction in obliquity, arcseconds
	DX   float64 // celestial pole offset X, arcseconds
	DY   float64 // celestial pole offset Y, arcseconds
	DAT  float64 // TAI - UTC, seconds (integer leap seconds)
}

// Record is the interpolated result of a Table lookup.
type Record struct {
	DUT1, LOD, XP, YP, DPsi, DEps, DX, DY, DAT float64
	Clamped                                    bool // true if the query fell outside the loaded span
}

// Table is an immutable, MJD-indexed EOP table with linear interpolation
// between adjacent daily rows.
type Table struct {
	rows []Row // sorted ascending by MJD
}

// NewTable builds a Table from rows. Rows need not be pre-sorted.
func NewTable(rows []Row) *Table {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MJD < sorted[j].MJD })
	return &Table{rows: sorted}
}

// Lookup returns the EOP record at mjd (UTC), linearly interpolating
// between the two bracketing daily rows. Queries outside the loaded span
// clamp to the nearest edge row and log a warning (spec §7: "never
// silently return zero").
func (t *Table) Lookup(mjd float64) Record {
	if len(t.rows) == 0 {
		hpoplog.Warnf("eop: lookup at mjd=%.3f on empty table, returning zero record", mjd)
		return Record{Clamped: true}
	}

	first, last := t.rows[0], t.rows[len(t.rows)-1]
	if mjd <= float64(first.MJD) {
		if mjd < float64(first.MJD) {
			hpoplog.Warnf("eop: mjd=%.3f before table start (mjd=%d), clamping", mjd, first.MJD)
		}
		return recordFromRow(first, true)
	}
	if mjd >= float64(last.MJD) {
		if mjd > float64(last.MJD) {
			hpoplog.Warnf("eop: mjd=%.3f after table end (mjd=%d), clamping", mjd, last.MJD)
		}
		return recordFromRow(last, true)
	}

	// Binary search for the bracketing pair.
	i := sort.Search(len(t.rows), func(k int) bool { return float64(t.rows[k].MJD) > mjd }) - 1
	lo, hi := t.rows[i], t.rows[i+1]
	frac := mjd - float64(lo.MJD) // denominator is 1 day since rows are daily

	return Record{
		DUT1:    lerp(lo.DUT1, hi.DUT1, frac),
		LOD:     lerp(lo.LOD, hi.LOD, frac),
		XP:      lerp(lo.XP, hi.XP, frac),
		YP:      lerp(lo.YP, hi.YP, frac),
		DPsi:    lerp(lo.DPsi, hi.DPsi, frac),
		DEps:    lerp(lo.DEps, hi.DEps, frac),
		DX:      lerp(lo.DX, hi.DX, frac),
		DY:      lerp(lo.DY, hi.DY, frac),
		DAT:     lo.DAT, // leap seconds step, never interpolated
		Clamped: false,
	}
}

func recordFromRow(r Row, clamped bool) Record {
	return Record{
		DUT1: r.DUT1, LOD: r.LOD, XP: r.XP, YP: r.YP,
		DPsi: r.DPsi, DEps: r.DEps, DX: r.DX, DY: r.DY, DAT: r.DAT,
		Clamped: clamped,
	}
}

func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}
