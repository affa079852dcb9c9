package eop

import (
	"sort"

	"github.com/hpop/orbit/internal/hpoplog"
)

// SpWRow is one day's space-weather indices, in the CelesTrak SW-All
// layout: a daily Ap/Kp plus eight 3-hourly Ap/Kp values for that UTC day.
type SpWRow struct {
	MJD       int
	F107Obs   float64 // observed F10.7, solar flux units
	F107Adj   float64 // F10.7 adjusted to 1 AU
	F107Bar   float64 // 81-day centered average of F10.7
	APDaily   float64
	AP3Hourly [8]float64
	Kp3Hourly [8]float64
}

// SpWTable is an immutable, MJD-indexed space-weather table.
type SpWTable struct {
	rows []SpWRow
	byMJD map[int]*SpWRow
}

// NewSpWTable builds an SpWTable from rows.
func NewSpWTable(rows []SpWRow) *SpWTable {
	sorted := make([]SpWRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MJD < sorted[j].MJD })
	byMJD := make(map[int]*SpWRow, len(sorted))
	for i := range sorted {
		byMJD[sorted[i].MJD] = &sorted[i]
	}
	return &SpWTable{rows: sorted, byMJD: byMJD}
}

// ApInputs is the 7-slot Ap structure NRLMSISE-00 expects (spec §4.8):
//
//	[0] daily Ap for today
//	[1] 3-hour Ap at the current time
//	[2..4] 3-hour Ap 3, 6, 9 hours before the current time
//	[5] mean of the eight 3-hour Ap values 12-33 hours before
//	[6] mean of the eight 3-hour Ap values 36-57 hours before
type ApInputs struct {
	Ap      [7]float64
	F107    float64 // previous day's observed F10.7
	F107Bar float64 // 81-day centered average, current day
}

// Lookup assembles the NRLMSISE-00 space-weather inputs for a UTC Modified
// Julian Date and a fractional hour-of-day (0-24), reading today's row plus
// up to three days prior, per spec §4.8. Missing prior days clamp to the
// nearest available row and log a warning.
func (t *SpWTable) Lookup(mjd float64, hourOfDay float64) ApInputs {
	dayMJD := int(mjd)
	today := t.rowAt(dayMJD)
	yesterday := t.rowAt(dayMJD - 1)

	slot := int(hourOfDay / 3.0)
	if slot > 7 {
		slot = 7
	}
	if slot < 0 {
		slot = 0
	}

	var out ApInputs
	out.Ap[0] = today.APDaily
	out.Ap[1] = today.AP3Hourly[slot]

	// Slots 2-4: 3,6,9 hours earlier, possibly reaching into yesterday.
	for k, hoursBack := range []int{3, 6, 9} {
		out.Ap[2+k] = apHoursBack(today, yesterday, slot, hoursBack)
	}

	// Slot 5: mean of the eight 3-hour Ap values 12-33h earlier.
	out.Ap[5] = meanApWindow(t, dayMJD, slot, 12, 33)
	// Slot 6: mean of the eight 3-hour Ap values 36-57h earlier.
	out.Ap[6] = meanApWindow(t, dayMJD, slot, 36, 57)

	out.F107 = yesterday.F107Obs
	out.F107Bar = today.F107Bar
	return out
}

func (t *SpWTable) rowAt(mjd int) *SpWRow {
	if r, ok := t.byMJD[mjd]; ok {
		return r
	}
	if len(t.rows) == 0 {
		hpoplog.Warnf("eop: spw lookup at mjd=%d on empty table, returning zero row", mjd)
		return &SpWRow{MJD: mjd}
	}
	first, last := t.rows[0], t.rows[len(t.rows)-1]
	if mjd < first.MJD {
		hpoplog.Warnf("eop: spw mjd=%d before table start (mjd=%d), clamping", mjd, first.MJD)
		return &first
	}
	if mjd > last.MJD {
		hpoplog.Warnf("eop: spw mjd=%d after table end (mjd=%d), clamping", mjd, last.MJD)
		return &last
	}
	// mjd falls in a gap inside the span: use the nearer neighbouring row.
	i := sort.Search(len(t.rows), func(k int) bool { return t.rows[k].MJD > mjd })
	nearest := &t.rows[i]
	if mjd-t.rows[i-1].MJD <= t.rows[i].MJD-mjd {
		nearest = &t.rows[i-1]
	}
	hpoplog.Warnf("eop: spw mjd=%d missing from table, using mjd=%d", mjd, nearest.MJD)
	return nearest
}

// apHoursBack returns the 3-hourly Ap value hoursBack hours before the
// current slot, reaching back into the prior day's array when needed.
func apHoursBack(today, yesterday *SpWRow, slot, hoursBack int) float64 {
	slotsBack := hoursBack / 3
	idx := slot - slotsBack
	if idx >= 0 {
		return today.AP3Hourly[idx]
	}
	idx += 8
	if idx < 0 {
		idx = 0
	}
	if idx > 7 {
		idx = 7
	}
	return yesterday.AP3Hourly[idx]
}

// meanApWindow averages the eight 3-hourly Ap values in [startHour,
// endHour] before the current slot, spanning day boundaries as needed.
func meanApWindow(t *SpWTable, dayMJD, slot, startHour, endHour int) float64 {
	var sum float64
	count := 0
	for h := startHour; h <= endHour; h += 3 {
		slotsBack := h / 3
		absoluteSlot := slot - slotsBack
		dayOffset := 0
		for absoluteSlot < 0 {
			absoluteSlot += 8
			dayOffset--
		}
		row := t.rowAt(dayMJD + dayOffset)
		sum += row.AP3Hourly[absoluteSlot]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
