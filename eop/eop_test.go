package eop

import (
	"math"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{MJD: 60000, DUT1: 0.10, XP: 0.100, YP: 0.200, DAT: 37},
		{MJD: 60001, DUT1: 0.12, XP: 0.102, YP: 0.202, DAT: 37},
		{MJD: 60002, DUT1: 0.08, XP: 0.098, YP: 0.198, DAT: 37},
	}
}

func TestTableInterpolates(t *testing.T) {
	tab := NewTable(sampleRows())
	r := tab.Lookup(60000.5)
	if math.Abs(r.DUT1-0.11) > 1e-9 {
		t.Errorf("DUT1 = %f, want 0.11", r.DUT1)
	}
	if r.Clamped {
		t.Error("in-range lookup should not be marked clamped")
	}
}

func TestTableClampsBeforeStart(t *testing.T) {
	tab := NewTable(sampleRows())
	r := tab.Lookup(59990)
	if !r.Clamped {
		t.Error("out-of-range lookup should be marked clamped")
	}
	if r.DUT1 != 0.10 {
		t.Errorf("DUT1 = %f, want edge value 0.10", r.DUT1)
	}
}

func TestTableClampsAfterEnd(t *testing.T) {
	tab := NewTable(sampleRows())
	r := tab.Lookup(70000)
	if !r.Clamped {
		t.Error("out-of-range lookup should be marked clamped")
	}
	if r.DUT1 != 0.08 {
		t.Errorf("DUT1 = %f, want edge value 0.08", r.DUT1)
	}
}

func TestTableEmptyReturnsZero(t *testing.T) {
	tab := NewTable(nil)
	r := tab.Lookup(60000)
	if !r.Clamped || r.DUT1 != 0 {
		t.Errorf("empty table lookup = %+v, want zero clamped record", r)
	}
}

func TestTableLeapSecondsStepNotInterpolate(t *testing.T) {
	rows := sampleRows()
	rows[1].DAT = 38 // leap second introduced between day 0 and day 1
	tab := NewTable(rows)
	r := tab.Lookup(60000.5)
	if r.DAT != 37 {
		t.Errorf("DAT = %f, want 37 (stepped from lower row, not interpolated)", r.DAT)
	}
}

func sampleSpWRows() []SpWRow {
	rows := make([]SpWRow, 0, 4)
	for i, mjd := range []int{59997, 59998, 59999, 60000} {
		row := SpWRow{MJD: mjd, F107Obs: 120 + float64(i), F107Bar: 110}
		for k := 0; k < 8; k++ {
			row.AP3Hourly[k] = float64(mjd%100) + float64(k)
		}
		row.APDaily = row.AP3Hourly[0]
		rows = append(rows, row)
	}
	return rows
}

func TestSpWLookupSlot0And1(t *testing.T) {
	tab := NewSpWTable(sampleSpWRows())
	in := tab.Lookup(60000, 7.5) // slot 2 (6-9h)
	if in.Ap[0] != tab.byMJD[60000].APDaily {
		t.Errorf("Ap[0] = %f, want daily Ap", in.Ap[0])
	}
	if in.Ap[1] != tab.byMJD[60000].AP3Hourly[2] {
		t.Errorf("Ap[1] = %f, want current 3-hour slot", in.Ap[1])
	}
}

func TestSpWLookupReachesIntoYesterday(t *testing.T) {
	tab := NewSpWTable(sampleSpWRows())
	// Slot 0 (hour 0-3): 3 hours earlier must come from yesterday's slot 7.
	in := tab.Lookup(60000, 1.0)
	want := tab.byMJD[59999].AP3Hourly[7]
	if in.Ap[2] != want {
		t.Errorf("Ap[2] = %f, want yesterday's last slot %f", in.Ap[2], want)
	}
}

func TestSpWLookupClampsOutOfRange(t *testing.T) {
	tab := NewSpWTable(sampleSpWRows())
	in := tab.Lookup(50000, 0)
	if in.Ap[0] != tab.rows[0].APDaily {
		t.Errorf("out-of-range lookup did not clamp to first row")
	}
}
